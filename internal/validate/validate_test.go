package validate

import (
	"strings"
	"testing"

	"becomebetter/internal/models"
)

func TestStructAcceptsValidRequest(t *testing.T) {
	req := models.SendJoinRequestRequest{StudentID: "s1", CoachID: "c1"}

	if err := Struct(req); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStructReportsEveryMissingField(t *testing.T) {
	err := Struct(models.SendJoinRequestRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "studentid is required") || !strings.Contains(msg, "coachid is required") {
		t.Errorf("unexpected message: %v", msg)
	}
}

func TestStructKeepsPercentSignsVerbatim(t *testing.T) {
	type discountRequest struct {
		Discount string `validate:"required,oneof=10% 25%"`
	}

	err := Struct(discountRequest{Discount: "50%"})
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "discount must be one of 10% 25%"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestStructValidatesEmailAndRole(t *testing.T) {
	req := models.CreateUserRequest{
		Email:    "not-an-email",
		Password: "secret1",
		Name:     "A Player",
		Role:     "Umpire",
	}

	err := Struct(req)
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email") {
		t.Errorf("expected email message, got: %v", msg)
	}
	if !strings.Contains(msg, "role must be one of") {
		t.Errorf("expected role message, got: %v", msg)
	}
}
