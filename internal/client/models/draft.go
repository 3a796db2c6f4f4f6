package models

// PlaceholderText seeds the message field of a brand-new draft.
const PlaceholderText = "내용을 입력해주세요"

// ImageSource is the image slot of a draft: either a URL reference or an
// asset picked from disk that still has to be uploaded. A nil source
// normalizes to the empty string.
type ImageSource interface {
	imageSource()
}

// ImageURL references an image by URL.
type ImageURL string

func (ImageURL) imageSource() {}

// ImageAsset holds raw image bytes awaiting upload. It resolves to a URL
// only during an authenticated submission.
type ImageAsset struct {
	Data []byte
	MIME string
}

func (ImageAsset) imageSource() {}

// Draft is the ephemeral staging area a day cell edits. It lives from
// hydration until the cell is discarded and is never persisted itself.
type Draft struct {
	Image ImageSource
	Video string
	Text  string
	Audio string

	// Err is the last user-visible submission error. The edit surface is
	// dismissed before the write starts, so this field is the only place
	// a transport failure becomes visible.
	Err string
}

// NewDraft builds a draft for a cell. With an existing record all four
// content fields hydrate from it; otherwise the message starts with the
// placeholder and everything else is empty.
func NewDraft(existing *DailyBox) *Draft {
	if existing == nil {
		return &Draft{Text: PlaceholderText}
	}
	return &Draft{
		Image: ImageURL(existing.Content.Image),
		Video: existing.Content.Video,
		Text:  existing.Content.Text,
		Audio: existing.Content.Audio,
	}
}

// ImageRef returns the draft's image as a URL string. ok is false when
// the slot holds an asset that has not been uploaded yet.
func (d *Draft) ImageRef() (url string, ok bool) {
	switch img := d.Image.(type) {
	case nil:
		return "", true
	case ImageURL:
		return string(img), true
	default:
		return "", false
	}
}

// Snapshot builds the normalized content payload sent for persistence.
// The image value is passed in by the caller because an uploaded asset
// resolves to its public URL only during submission.
func (d *Draft) Snapshot(image string) Content {
	return Content{
		Image: image,
		Video: d.Video,
		Text:  d.Text,
		Audio: d.Audio,
	}
}
