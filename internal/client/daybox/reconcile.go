package daybox

import "github.com/adventbox/daybox/internal/client/models"

// reconcile maps a server content payload back onto the draft, one
// field to one field. Fields the server left out decode to "" upstream,
// so the draft never picks up an absent value.
func reconcile(d *models.Draft, c models.Content) {
	d.Image = models.ImageURL(c.Image)
	d.Video = c.Video
	d.Text = c.Text
	d.Audio = c.Audio
}
