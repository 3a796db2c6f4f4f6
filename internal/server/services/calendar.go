package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/adventbox/daybox/internal/server/config"
	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/server/repositories/repomanager"
	"github.com/adventbox/daybox/internal/shared"
)

// indirections for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// UploadTarget pairs the presigned PUT URL an asset is uploaded to with
// the public URL the stored content will reference afterwards.
type UploadTarget struct {
	UploadURL string
	PublicURL string
}

type CalendarService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewCalendarService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *CalendarService {
	return &CalendarService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// CreateCalendar opens a new calendar for the user. The calendar anchor
// defaults to the account anchor.
func (s *CalendarService) CreateCalendar(ctx context.Context, userID, title string, startDate time.Time) (*models.Calendar, error) {

	calendar := &models.Calendar{
		UserID:    userID,
		Title:     title,
		StartDate: startDate,
	}

	repo := s.repomanager.Calendars(s.db)

	calendar, err := repo.Create(ctx, calendar)
	if err != nil {
		return nil, fmt.Errorf("error creating calendar: %w", err)
	}

	return calendar, nil
}

// ownedCalendar loads a calendar and confirms userID owns it. A calendar
// belonging to someone else is reported as not found.
func (s *CalendarService) ownedCalendar(ctx context.Context, calendarID, userID string) (*models.Calendar, error) {
	repo := s.repomanager.Calendars(s.db)
	return repo.GetOwned(ctx, calendarID, userID)
}

// CreateDailyBox persists a new box in the calendar. The identifier is
// assigned here.
func (s *CalendarService) CreateDailyBox(ctx context.Context, userID, calendarID string, date time.Time, content models.Content, isOpen bool) (*models.DailyBox, error) {

	if _, err := s.ownedCalendar(ctx, calendarID, userID); err != nil {
		return nil, err
	}

	box := &models.DailyBox{
		ID:         uuid.New().String(),
		CalendarID: calendarID,
		Date:       date,
		Content:    content,
		IsOpen:     isOpen,
	}

	repo := s.repomanager.DailyBoxes(s.db)
	return repo.Create(ctx, box)
}

// UpdateDailyBox replaces the content of an existing box. Date and the
// opened flag stay as they are.
func (s *CalendarService) UpdateDailyBox(ctx context.Context, userID, calendarID, boxID string, content models.Content) (*models.DailyBox, error) {

	if _, err := s.ownedCalendar(ctx, calendarID, userID); err != nil {
		return nil, err
	}

	box := &models.DailyBox{
		ID:         boxID,
		CalendarID: calendarID,
		Content:    content,
	}

	repo := s.repomanager.DailyBoxes(s.db)
	return repo.Update(ctx, box)
}

// ListDailyBoxes returns all boxes of the calendar ordered by date.
func (s *CalendarService) ListDailyBoxes(ctx context.Context, userID, calendarID string) ([]*models.DailyBox, error) {

	if _, err := s.ownedCalendar(ctx, calendarID, userID); err != nil {
		return nil, err
	}

	repo := s.repomanager.DailyBoxes(s.db)
	return repo.ListByCalendar(ctx, calendarID)
}

// storageKeyFor produces a date-partitioned object key, keeping the file
// extension implied by the MIME type so the object serves with a useful name.
func storageKeyFor(mimeType string) string {
	ext := ""
	switch mimeType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	d := time.Now()
	return fmt.Sprintf("media/%d/%02d/%02d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

func (s *CalendarService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload issues a presigned PUT URL for an image asset. Only image
// MIME types are accepted.
func (s *CalendarService) PresignUpload(ctx context.Context, userID, calendarID, mimeType string) (*UploadTarget, error) {

	if !strings.HasPrefix(mimeType, "image/") {
		return nil, shared.ErrorValidation
	}

	if _, err := s.ownedCalendar(ctx, calendarID, userID); err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := storageKeyFor(mimeType)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &mimeType,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return nil, err
	}

	return &UploadTarget{
		UploadURL: req.URL,
		PublicURL: strings.TrimRight(s.config.S3PublicBaseURL, "/") + "/" + key,
	}, nil
}
