package repository

import (
	"fmt"
	"time"

	"becomebetter/internal/apperrors"
	"becomebetter/internal/config"
	"becomebetter/internal/firebase"
	"becomebetter/internal/media"
	"becomebetter/internal/models"
	"becomebetter/internal/relationship"

	"cloud.google.com/go/firestore"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

// UploadVideo decodes the transport payload, writes the blob, then writes the
// metadata document. The two writes are not transactional: if the metadata
// write fails the blob is already persisted and is reported as a partial
// upload.
func (fr *FirebaseRepository) UploadVideo(c *models.UploadVideoRequest) (*models.Video, error) {
	data, err := media.DecodePayload(c.VideoData)
	if err != nil {
		return nil, err
	}

	objectName := media.ObjectName(c.FileName)
	if err := fr.uploadBlob(config.Config.VideosBucket, objectName, data, media.ContentTypeFor(c.FileName)); err != nil {
		return nil, fmt.Errorf("error uploading video blob: %v", err)
	}

	coachID := relationship.NormalizeID(c.AssignedCoachID)
	video := &models.Video{
		ID:              uuid.New().String(),
		UploadedBy:      relationship.NormalizeID(c.UploadedBy),
		RecordedFor:     relationship.NormalizeID(c.RecordedFor),
		AssignedCoachID: coachID,
		BlobName:        objectName,
		DurationSeconds: c.DurationSeconds,
		FeedbackStatus:  models.FeedbackPending,
		IsPrivate:       true,
		VisibleTo:       []string{coachID},
		UploadedAt:      time.Now(),
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(video.ID).Set(firebase.Context, map[string]interface{}{
		"id":              video.ID,
		"uploadedBy":      video.UploadedBy,
		"recordedFor":     video.RecordedFor,
		"assignedCoachId": video.AssignedCoachID,
		"blobName":        video.BlobName,
		"durationSeconds": video.DurationSeconds,
		"feedbackStatus":  video.FeedbackStatus,
		"isPrivate":       video.IsPrivate,
		"visibleTo":       video.VisibleTo,
		"uploadedAt":      video.UploadedAt,
	})
	if err != nil {
		glog.Errorf("video blob %v uploaded but metadata write failed: %v\n", objectName, err)
		return nil, apperrors.PartialUploadError
	}

	if video.VideoURL, err = fr.SignedReadURL(config.Config.VideosBucket, objectName); err != nil {
		glog.Warningf("error minting access URL for fresh upload: %v\n", err)
	}

	return video, nil
}

// GetVideoByID retrieves one video document and mints a fresh access URL.
func (fr *FirebaseRepository) GetVideoByID(id string) (*models.Video, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(id).Get(firebase.Context)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.VideoNotFoundError
		}
		return nil, fmt.Errorf("error getting video: %v", err)
	}

	var video models.Video
	if err := mapstructure.Decode(doc.Data(), &video); err != nil {
		return nil, err
	}
	video.ID = doc.Ref.ID
	fr.attachAccessURL(&video)

	return &video, nil
}

// GetVideosByStudent returns the videos recorded for a student, optionally
// narrowed to one assigned coach. Every returned video carries a freshly
// minted access URL.
func (fr *FirebaseRepository) GetVideosByStudent(studentID, coachID string) ([]*models.Video, error) {
	query := fr.firestoreClient.Collection(models.FirestoreVideosCollection).
		Where("recordedFor", "==", relationship.NormalizeID(studentID))
	if coachID != "" {
		query = query.Where("assignedCoachId", "==", relationship.NormalizeID(coachID))
	}

	return fr.decodeVideos(query.Documents(firebase.Context))
}

// GetVideosByCoach returns the videos assigned to a coach for review.
func (fr *FirebaseRepository) GetVideosByCoach(coachID string) ([]*models.Video, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreVideosCollection).
		Where("assignedCoachId", "==", relationship.NormalizeID(coachID)).
		Documents(firebase.Context)

	return fr.decodeVideos(iter)
}

// DeleteVideo removes the metadata document, then best-effort deletes the
// blob. A failed blob delete leaves an orphan; the metadata is already gone.
func (fr *FirebaseRepository) DeleteVideo(id string) error {
	video, err := fr.GetVideoByID(id)
	if err != nil {
		return err
	}

	if _, err := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(video.ID).Delete(firebase.Context); err != nil {
		return fmt.Errorf("error deleting video metadata: %v", err)
	}

	_ = fr.deleteBlob(config.Config.VideosBucket, video.BlobName)

	return nil
}

// SaveFeedback optionally uploads a voice note blob, writes the feedback
// document, and flips the video's feedback status to reviewed.
func (fr *FirebaseRepository) SaveFeedback(c *models.SaveFeedbackRequest) (*models.Feedback, error) {
	video, err := fr.GetVideoByID(c.VideoID)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		ID:        uuid.New().String(),
		VideoID:   video.ID,
		CoachID:   relationship.NormalizeID(c.CoachID),
		StudentID: relationship.NormalizeID(c.StudentID),
		Comments:  c.Comments,
		CreatedAt: time.Now(),
	}

	if c.VoiceNoteData != "" {
		data, err := media.DecodePayload(c.VoiceNoteData)
		if err != nil {
			return nil, err
		}

		feedback.BlobName = media.ObjectName(feedback.ID + ".m4a")
		if err := fr.uploadBlob(config.Config.FeedbackBucket, feedback.BlobName, data, "audio/mp4"); err != nil {
			return nil, fmt.Errorf("error uploading voice note: %v", err)
		}
		if feedback.VoiceNoteURI, err = fr.SignedReadURL(config.Config.FeedbackBucket, feedback.BlobName); err != nil {
			glog.Warningf("error minting voice note URL: %v\n", err)
		}
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreFeedbackCollection).Doc(feedback.ID).Set(firebase.Context, map[string]interface{}{
		"id":           feedback.ID,
		"videoId":      feedback.VideoID,
		"coachId":      feedback.CoachID,
		"studentId":    feedback.StudentID,
		"comments":     feedback.Comments,
		"blobName":     feedback.BlobName,
		"voiceNoteUri": feedback.VoiceNoteURI,
		"createdAt":    feedback.CreatedAt,
	})
	if err != nil {
		if feedback.BlobName != "" {
			glog.Errorf("voice note %v uploaded but feedback write failed: %v\n", feedback.BlobName, err)
			return nil, apperrors.PartialUploadError
		}
		return nil, fmt.Errorf("error saving feedback: %v", err)
	}

	// Best effort: the feedback itself is saved even if the status flip fails.
	_, err = fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(video.ID).Update(firebase.Context, []firestore.Update{
		{
			Path:  "feedbackStatus",
			Value: models.FeedbackReviewed,
		},
	})
	if err != nil {
		glog.Warningf("error marking video %v reviewed: %v\n", video.ID, err)
	}

	return feedback, nil
}

// GetFeedbackForVideo returns every feedback document attached to a video.
func (fr *FirebaseRepository) GetFeedbackForVideo(videoID string) ([]*models.Feedback, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreFeedbackCollection).
		Where("videoId", "==", videoID).
		Documents(firebase.Context)

	feedbacks := make([]*models.Feedback, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var feedback models.Feedback
		if err := mapstructure.Decode(doc.Data(), &feedback); err != nil {
			return nil, err
		}
		feedback.ID = doc.Ref.ID
		if feedback.BlobName != "" {
			if url, err := fr.SignedReadURL(config.Config.FeedbackBucket, feedback.BlobName); err == nil {
				feedback.VoiceNoteURI = url
			}
		}
		feedbacks = append(feedbacks, &feedback)
	}

	return feedbacks, nil
}

// UploadAnnotation writes an annotation blob and its metadata document using
// the same blob-then-document pattern as video uploads.
func (fr *FirebaseRepository) UploadAnnotation(c *models.UploadAnnotationRequest) (*models.Annotation, error) {
	video, err := fr.GetVideoByID(c.VideoID)
	if err != nil {
		return nil, err
	}

	data, err := media.DecodePayload(c.AnnotationData)
	if err != nil {
		return nil, err
	}

	annotation := &models.Annotation{
		ID:        uuid.New().String(),
		VideoID:   video.ID,
		CreatedBy: relationship.NormalizeID(c.CreatedBy),
		CreatedAt: time.Now(),
	}
	annotation.BlobName = media.ObjectName(annotation.ID + ".json")

	if err := fr.uploadBlob(config.Config.AnnotationsBucket, annotation.BlobName, data, "application/json"); err != nil {
		return nil, fmt.Errorf("error uploading annotation blob: %v", err)
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreAnnotationsCollection).Doc(annotation.ID).Set(firebase.Context, map[string]interface{}{
		"id":        annotation.ID,
		"videoId":   annotation.VideoID,
		"createdBy": annotation.CreatedBy,
		"blobName":  annotation.BlobName,
		"createdAt": annotation.CreatedAt,
	})
	if err != nil {
		glog.Errorf("annotation blob %v uploaded but metadata write failed: %v\n", annotation.BlobName, err)
		return nil, apperrors.PartialUploadError
	}

	if annotation.AnnotationURL, err = fr.SignedReadURL(config.Config.AnnotationsBucket, annotation.BlobName); err != nil {
		glog.Warningf("error minting annotation URL: %v\n", err)
	}

	return annotation, nil
}

// GetAnnotationsForVideo returns every annotation attached to a video with
// fresh access URLs.
func (fr *FirebaseRepository) GetAnnotationsForVideo(videoID string) ([]*models.Annotation, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreAnnotationsCollection).
		Where("videoId", "==", videoID).
		Documents(firebase.Context)

	annotations := make([]*models.Annotation, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var annotation models.Annotation
		if err := mapstructure.Decode(doc.Data(), &annotation); err != nil {
			return nil, err
		}
		annotation.ID = doc.Ref.ID
		if url, err := fr.SignedReadURL(config.Config.AnnotationsBucket, annotation.BlobName); err == nil {
			annotation.AnnotationURL = url
		}
		annotations = append(annotations, &annotation)
	}

	return annotations, nil
}

// Helpers

func (fr *FirebaseRepository) decodeVideos(iter *firestore.DocumentIterator) ([]*models.Video, error) {
	videos := make([]*models.Video, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			glog.Warningf("error iterating videos: %v\n", err)
			return nil, err
		}

		var video models.Video
		if err := mapstructure.Decode(doc.Data(), &video); err != nil {
			return nil, err
		}
		video.ID = doc.Ref.ID
		fr.attachAccessURL(&video)
		videos = append(videos, &video)
	}

	return videos, nil
}

func (fr *FirebaseRepository) attachAccessURL(video *models.Video) {
	url, err := fr.SignedReadURL(config.Config.VideosBucket, video.BlobName)
	if err != nil {
		glog.Warningf("error minting access URL for video %v: %v\n", video.ID, err)
		return
	}
	video.VideoURL = url
}
