package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/adventbox/daybox/internal/client/api"
	"github.com/adventbox/daybox/internal/client/daybox"
	"github.com/adventbox/daybox/internal/client/models"
	"github.com/adventbox/daybox/internal/client/session"
	"github.com/adventbox/daybox/internal/datex"
)

// newCalendar creates a calendar: device-local in guest mode, remote in
// authenticated mode.
func (a *App) newCalendar(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	startDate, err := GetSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if _, err := datex.Parse(startDate); err != nil {
		fmt.Println("Error:", err)
		return
	}

	if authed, ok := a.mode.(session.Authenticated); ok {
		res, err := a.api.CreateCalendar(ctx, authed.Session.AccessToken,
			api.CreateCalendarRequest{Title: title, StartDate: startDate})
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a.use(res.CalendarID)
		return
	}

	id, err := GetSimpleText(a.reader, "Calendar id", os.Stdout)
	if err != nil || id == "" {
		fmt.Println("A calendar id is required in guest mode.")
		return
	}
	if err := a.store.SaveCalendar(id, &models.Calendar{Title: title, StartDate: startDate}); err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.use(id)
}

func (a *App) edit(ctx context.Context, dayArg string) {
	cell, ok := a.cellFor(ctx, dayArg)
	if !ok {
		return
	}
	d := cell.Draft

	image, err := GetTextWithDefault(a.reader, "Image URL (or @/path/to/file)", currentImage(d), os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if strings.HasPrefix(image, "@") {
		asset, err := loadAsset(strings.TrimPrefix(image, "@"))
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		d.Image = asset
	} else {
		d.Image = models.ImageURL(image)
	}

	if d.Text, err = GetTextWithDefault(a.reader, "Message", d.Text, os.Stdout); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if d.Video, err = GetTextWithDefault(a.reader, "Video URL", d.Video, os.Stdout); err != nil {
		fmt.Println("Error:", err)
		return
	}
	if d.Audio, err = GetTextWithDefault(a.reader, "Audio URL", d.Audio, os.Stdout); err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.gateway.Submit(ctx, cell); err != nil {
		if d.Err != "" {
			fmt.Println("Save failed:", d.Err)
		} else {
			fmt.Println("Save failed:", err)
		}
		return
	}
	fmt.Println("Saved.")
}

func (a *App) show(ctx context.Context, dayArg string) {
	cell, ok := a.cellFor(ctx, dayArg)
	if !ok {
		return
	}

	if cell.Existing == nil {
		fmt.Printf("Day %d: not persisted yet\n", cell.Offset)
	} else {
		fmt.Printf("Day %d (%s), id %s\n", cell.Offset, cell.Existing.Date, cell.Existing.ID)
	}
	d := cell.Draft
	image, _ := d.ImageRef()
	fmt.Printf("  image: %s\n  video: %s\n  text:  %s\n  audio: %s\n", image, d.Video, d.Text, d.Audio)
	if d.Err != "" {
		fmt.Println("  last error:", d.Err)
	}
}

// cellFor resolves (and caches) the day cell for the active calendar,
// hydrating its draft from the existing record if one is known.
func (a *App) cellFor(ctx context.Context, dayArg string) (*daybox.Cell, bool) {
	if a.calendarID == "" {
		fmt.Println("Pick a calendar first: use <calendarId>")
		return nil, false
	}
	offset, err := strconv.Atoi(dayArg)
	if err != nil || offset < 0 {
		fmt.Println("Day must be a non-negative number.")
		return nil, false
	}

	key := fmt.Sprintf("%s/%d", a.calendarID, offset)
	if cell, ok := a.cells[key]; ok {
		return cell, true
	}

	existing, err := a.existingBox(ctx, offset)
	if err != nil {
		fmt.Println("Error:", err)
		return nil, false
	}

	cell := daybox.NewCell(a.calendarID, offset, existing)
	a.cells[key] = cell
	return cell, true
}

func (a *App) existingBox(ctx context.Context, offset int) (*models.DailyBox, error) {
	if authed, ok := a.mode.(session.Authenticated); ok {
		boxes, err := a.api.ListDailyBoxes(ctx, authed.Session.AccessToken, a.calendarID)
		if err != nil {
			return nil, err
		}
		want := datex.Format(datex.Resolve(authed.Session.StartDate, offset))
		for i := range boxes {
			if boxes[i].Date == want {
				return &boxes[i], nil
			}
		}
		return nil, nil
	}

	cal, err := a.store.Calendar(a.calendarID)
	if err != nil {
		return nil, err
	}
	if box, ok := cal.BoxAt(offset); ok {
		return &box, nil
	}
	return nil, nil
}

func currentImage(d *models.Draft) string {
	image, ok := d.ImageRef()
	if !ok {
		return ""
	}
	return image
}

func loadAsset(path string) (models.ImageAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ImageAsset{}, err
	}
	return models.ImageAsset{Data: data, MIME: http.DetectContentType(data)}, nil
}
