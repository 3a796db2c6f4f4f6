// Package daybox holds the submission core for a single day cell: the
// gateway that decides where the cell's content is written (guest-mode
// local storage vs the remote service), reconciles server responses back
// into the draft, and turns failures into redirects or local messages.
package daybox

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/adventbox/daybox/internal/client/api"
	"github.com/adventbox/daybox/internal/client/models"
	"github.com/adventbox/daybox/internal/client/session"
	"github.com/adventbox/daybox/internal/client/store"
	"github.com/adventbox/daybox/internal/datex"
	"github.com/adventbox/daybox/internal/logging"
	"github.com/adventbox/daybox/internal/shared"
)

// defaultSubmitError is shown when a transport failure carries no
// message of its own.
const defaultSubmitError = "입력 내용 저장 중 오류가 발생했습니다. 다시 시도해 주세요."

// RemoteAPI is the slice of the service client the gateway needs.
// *api.Client satisfies it.
type RemoteAPI interface {
	CreateDailyBox(ctx context.Context, token, calendarID string, req api.CreateDailyBoxRequest) (*models.DailyBox, error)
	UpdateDailyBox(ctx context.Context, token, calendarID, dailyBoxID string, req api.UpdateDailyBoxRequest) (*models.DailyBox, error)
	RequestUploadURL(ctx context.Context, token, calendarID, mimeType string) (*api.UploadTarget, error)
	UploadAsset(ctx context.Context, uploadURL string, data []byte, mimeType string) error
}

// ValiditySink receives the shared form-validity signal once at least
// one record has been synchronized.
type ValiditySink interface {
	SetDailyBoxesValid(valid bool)
}

// Navigator routes the user to the error view. Message and status may be
// empty: the missing-credential redirect carries neither.
type Navigator interface {
	RedirectError(message, status string)
}

// Surface is the edit overlay. It is dismissed before the write starts
// (optimistic dismissal, kept from the original design), so a failed
// submission surfaces only through Draft.Err.
type Surface interface {
	Dismiss()
}

// Cell is one day slot under submission. Existing is the previously
// known record, nil when the cell was never persisted; its identifier is
// the sole create-vs-update signal.
type Cell struct {
	CalendarID string
	Offset     int
	Existing   *models.DailyBox
	Draft      *models.Draft

	inFlight atomic.Bool
}

// NewCell builds a cell and hydrates its draft from the existing record.
func NewCell(calendarID string, offset int, existing *models.DailyBox) *Cell {
	return &Cell{
		CalendarID: calendarID,
		Offset:     offset,
		Existing:   existing,
		Draft:      models.NewDraft(existing),
	}
}

// Config wires a Gateway. Mode, API and Store are required for the paths
// that use them; collaborators left nil default to no-ops.
type Config struct {
	Mode      session.Mode
	API       RemoteAPI
	Store     store.Store
	Validity  ValiditySink
	Navigator Navigator
	Surface   Surface
	Logger    logging.Logger

	// Now is the clock used for guest identifiers. Defaults to time.Now.
	Now func() time.Time
}

// Gateway performs day-cell submissions. The persistence mode is fixed
// at construction; there is exactly one dispatch point per submission.
type Gateway struct {
	mode      session.Mode
	api       RemoteAPI
	store     store.Store
	validity  ValiditySink
	navigator Navigator
	surface   Surface
	logger    logging.Logger
	now       func() time.Time
}

// New builds a Gateway from cfg.
func New(cfg Config) *Gateway {
	g := &Gateway{
		mode:      cfg.Mode,
		api:       cfg.API,
		store:     cfg.Store,
		validity:  cfg.Validity,
		navigator: cfg.Navigator,
		surface:   cfg.Surface,
		logger:    cfg.Logger,
		now:       cfg.Now,
	}
	if g.mode == nil {
		g.mode = session.Guest{}
	}
	if g.validity == nil {
		g.validity = noopValidity{}
	}
	if g.navigator == nil {
		g.navigator = noopNavigator{}
	}
	if g.surface == nil {
		g.surface = noopSurface{}
	}
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// Submit persists the cell's draft. One submission per cell may be in
// flight at a time; a concurrent second call returns
// shared.ErrorSubmissionInFlight without touching anything.
func (g *Gateway) Submit(ctx context.Context, cell *Cell) error {
	if !cell.inFlight.CompareAndSwap(false, true) {
		return shared.ErrorSubmissionInFlight
	}
	defer cell.inFlight.Store(false)

	cell.Draft.Err = ""
	g.surface.Dismiss()

	switch m := g.mode.(type) {
	case session.Guest:
		return g.submitGuest(cell)
	case session.Authenticated:
		return g.submitAuthenticated(ctx, m.Session, cell)
	default:
		return fmt.Errorf("unknown persistence mode %T", g.mode)
	}
}

// submitGuest writes the cell into the device-local aggregate: read the
// calendar, overwrite the cell's offset, write the calendar back. One
// logical step, no network.
func (g *Gateway) submitGuest(cell *Cell) error {
	image, ok := cell.Draft.ImageRef()
	if !ok {
		cell.Draft.Err = shared.ErrorUploadRequiresSession.Error()
		return shared.ErrorUploadRequiresSession
	}
	content := cell.Draft.Snapshot(image)

	cal, err := g.store.Calendar(cell.CalendarID)
	if err != nil {
		cell.Draft.Err = defaultSubmitError
		return err
	}

	anchor, err := datex.Parse(cal.StartDate)
	if err != nil {
		cell.Draft.Err = defaultSubmitError
		return fmt.Errorf("%w: calendar %s", shared.ErrorMissingAnchor, cell.CalendarID)
	}

	box := models.DailyBox{
		ID:      strconv.FormatInt(g.now().UnixMilli(), 10),
		Date:    datex.Format(datex.Resolve(anchor, cell.Offset)),
		Content: content,
		IsOpen:  false,
	}

	cal.SetBoxAt(cell.Offset, box)
	if err := g.store.SaveCalendar(cell.CalendarID, cal); err != nil {
		cell.Draft.Err = defaultSubmitError
		return err
	}

	cell.Existing = &box
	return nil
}

// submitAuthenticated issues exactly one call against the calendar's
// daily-box resources: an update at the item endpoint when the record's
// identifier is known, a create under the collection endpoint otherwise.
func (g *Gateway) submitAuthenticated(ctx context.Context, sess session.Session, cell *Cell) error {
	if sess.AccessToken == "" {
		g.navigator.RedirectError("", "")
		return shared.ErrorMissingCredential
	}

	image, err := g.resolveImage(ctx, sess, cell)
	if err != nil {
		return g.fail(cell, err)
	}
	content := cell.Draft.Snapshot(image)

	var box *models.DailyBox
	if cell.Existing != nil && cell.Existing.ID != "" {
		box, err = g.api.UpdateDailyBox(ctx, sess.AccessToken, cell.CalendarID, cell.Existing.ID,
			api.UpdateDailyBoxRequest{Content: content})
	} else {
		date := datex.Format(datex.Resolve(sess.StartDate, cell.Offset))
		box, err = g.api.CreateDailyBox(ctx, sess.AccessToken, cell.CalendarID,
			api.CreateDailyBoxRequest{Date: date, Content: content, IsOpen: false})
	}
	if err != nil {
		return g.fail(cell, err)
	}

	reconcile(cell.Draft, box.Content)
	cell.Existing = box
	g.validity.SetDailyBoxesValid(true)

	g.logger.Debug(ctx, "daily box synchronized",
		"calendar", cell.CalendarID, "offset", cell.Offset, "id", box.ID)
	return nil
}

// resolveImage turns the draft's image slot into a URL, uploading a
// pending asset through a presigned destination first. The draft itself
// is not touched: if the daily-box call afterwards fails, its fields
// stay exactly as they were before Submit.
func (g *Gateway) resolveImage(ctx context.Context, sess session.Session, cell *Cell) (string, error) {
	asset, ok := cell.Draft.Image.(models.ImageAsset)
	if !ok {
		image, _ := cell.Draft.ImageRef()
		return image, nil
	}

	target, err := g.api.RequestUploadURL(ctx, sess.AccessToken, cell.CalendarID, asset.MIME)
	if err != nil {
		return "", err
	}
	if err := g.api.UploadAsset(ctx, target.UploadURL, asset.Data, asset.MIME); err != nil {
		return "", err
	}
	return target.PublicURL, nil
}

// fail classifies an authenticated-path error. A rejected request
// redirects to the error view with the server's own message and status;
// anything else (transport, decode) becomes a local user-visible
// message. The draft's content fields are never rolled back or altered.
func (g *Gateway) fail(cell *Cell, err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		g.navigator.RedirectError(apiErr.Message, apiErr.Status)
		return err
	}

	if msg := err.Error(); msg != "" {
		cell.Draft.Err = msg
	} else {
		cell.Draft.Err = defaultSubmitError
	}
	return err
}

type noopValidity struct{}

func (noopValidity) SetDailyBoxesValid(bool) {}

type noopNavigator struct{}

func (noopNavigator) RedirectError(string, string) {}

type noopSurface struct{}

func (noopSurface) Dismiss() {}
