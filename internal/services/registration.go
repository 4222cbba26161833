package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/repositories"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=registration.go -destination=mock_registration.go -package=services

// publishTimeout bounds a registration event write. The write outlives the request context.
const publishTimeout = 5 * time.Second

// ErrEmailAlreadyExists is returned when another user already holds the email.
var ErrEmailAlreadyExists = errors.New("user with this email already exists")

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, password, fullName string, phone *string) (*models.UserDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RegistrationService creates users from validated registration requests.
type RegistrationService struct {
	writer      UserWriter
	kafkaWriter KafkaWriter
	hashCost    int
}

// NewRegistrationService creates a new RegistrationService. kafkaWriter may be nil,
// in which case registration events are not published.
func NewRegistrationService(writer UserWriter, kafkaWriter KafkaWriter) *RegistrationService {
	return &RegistrationService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		hashCost:    bcrypt.DefaultCost,
	}
}

// Register hashes the password of an already validated request and stores the user.
// The returned row carries the hash, which callers must not expose.
func (svc *RegistrationService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserDB, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), svc.hashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, req.Email, string(hashedPassword), req.FullName, req.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			logger.Log.Infow("email already registered", "email", req.Email)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publishRegistered(ctx, user)
	return user, nil
}

// publishRegistered publishes a user.registered event. Failures are logged only:
// the user row is already committed, so a client disconnect must not drop the event.
func (svc *RegistrationService) publishRegistered(ctx context.Context, user *models.UserDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "user_id", user.ID)
		return
	}

	event := models.UserRegisteredEvent{
		EventID:   uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal registration event", "user_id", user.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(user.ID, 10)),
		Value: data,
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := svc.kafkaWriter.WriteMessages(pubCtx, msg); err != nil {
		logger.Log.Errorw("Failed to publish registration event", "user_id", user.ID, "error", err)
	} else {
		logger.Log.Infow("Registration event published", "user_id", user.ID, "event_id", event.EventID)
	}
}
