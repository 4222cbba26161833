package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/repositories"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestRegistrationService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := models.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Secret1!x",
		FullName: "Jane Doe",
		Phone:    strPtr("+15550001"),
	}

	tests := []struct {
		name      string
		saved     *models.UserDB
		writerErr error
		wantErr   error
	}{
		{
			name: "successful registration",
			saved: &models.UserDB{
				ID:       7,
				Email:    req.Email,
				FullName: req.FullName,
				Phone:    req.Phone,
			},
		},
		{
			name:      "duplicate email",
			writerErr: repositories.ErrDuplicateEmail,
			wantErr:   services.ErrEmailAlreadyExists,
		},
		{
			name:      "writer error",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockUserWriter(ctrl)
			svc := services.NewRegistrationService(mockWriter, nil)

			var storedHash string
			mockWriter.EXPECT().
				Save(gomock.Any(), req.Email, gomock.Any(), req.FullName, req.Phone).
				DoAndReturn(func(_ context.Context, _, password, _ string, _ *string) (*models.UserDB, error) {
					storedHash = password
					return tt.saved, tt.writerErr
				})

			user, err := svc.Register(context.Background(), req)

			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)))
			assert.NotEqual(t, req.Password, storedHash)

			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.saved, user)
		})
	}
}

func TestRegistrationService_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewRegistrationService(mockWriter, mockKafka)

	saved := &models.UserDB{ID: 42, Email: "jane@example.com", FullName: "Jane Doe"}
	mockWriter.EXPECT().
		Save(gomock.Any(), saved.Email, gomock.Any(), saved.FullName, nil).
		Return(saved, nil)

	var published kafka.Message
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    saved.Email,
		Password: "Secret1!x",
		FullName: saved.FullName,
	})
	require.NoError(t, err)

	assert.Equal(t, "42", string(published.Key))

	var event models.UserRegisteredEvent
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, int64(42), event.UserID)
	assert.Equal(t, saved.Email, event.Email)
	assert.Equal(t, saved.FullName, event.FullName)
	assert.NotEmpty(t, event.EventID)
	assert.NotZero(t, event.Timestamp)
	assert.NotContains(t, string(published.Value), "password")
}

func TestRegistrationService_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewRegistrationService(mockWriter, mockKafka)

	saved := &models.UserDB{ID: 1, Email: "a@b.co", FullName: "Ann Lee"}
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(saved, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    saved.Email,
		Password: "Secret1!x",
		FullName: saved.FullName,
	})

	assert.NoError(t, err)
	assert.Equal(t, saved, user)
}

func TestRegistrationService_NoPublishOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewRegistrationService(mockWriter, mockKafka)

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "a@b.co",
		Password: "Secret1!x",
		FullName: "Ann Lee",
	})

	assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
}

func TestRegistrationService_PublishOutlivesRequestContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewRegistrationService(mockWriter, mockKafka)

	ctx, cancel := context.WithCancel(context.Background())

	saved := &models.UserDB{ID: 3, Email: "gone@example.com", FullName: "Gone Away"}
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, string, *string) (*models.UserDB, error) {
			// client disconnects right after the row is committed
			cancel()
			return saved, nil
		})
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pubCtx context.Context, _ ...kafka.Message) error {
			assert.NoError(t, pubCtx.Err())
			_, hasDeadline := pubCtx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})

	user, err := svc.Register(ctx, models.RegisterRequest{
		Email:    saved.Email,
		Password: "Secret1!x",
		FullName: saved.FullName,
	})

	require.NoError(t, err)
	assert.Equal(t, saved, user)
}
