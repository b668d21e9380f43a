package models

import (
	"reflect"
	"testing"
)

func TestDeliveryTokensFoldsLegacyField(t *testing.T) {
	user := &User{
		PushTokens: []string{"tok-a", "tok-b"},
		PushToken:  "tok-legacy",
	}

	got := user.DeliveryTokens()
	if !reflect.DeepEqual(got, []string{"tok-a", "tok-b", "tok-legacy"}) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestDeliveryTokensDeduplicates(t *testing.T) {
	user := &User{
		PushTokens: []string{"tok-a", "", "tok-a"},
		PushToken:  "tok-a",
	}

	got := user.DeliveryTokens()
	if !reflect.DeepEqual(got, []string{"tok-a"}) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestDeliveryTokensEmpty(t *testing.T) {
	user := &User{}

	if got := user.DeliveryTokens(); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}
