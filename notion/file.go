package notion

import "encoding/json"

// FileType names the hosting form of a file reference.
type FileType string

const (
	FileTypeFile     FileType = "file"
	FileTypeExternal FileType = "external"
)

// HostedFile is a Notion-hosted file: a signed URL with an expiry.
type HostedFile struct {
	URL        string    `json:"url"`
	ExpiryTime DateValue `json:"expiry_time"`
}

// ExternalFile is a file referenced by an external URL.
type ExternalFile struct {
	URL string `json:"url"`
}

// File is an asset reference: either a Notion-hosted file whose signed URL
// expires, or a plain external URL.
type File struct {
	Type FileType

	File     *HostedFile
	External *ExternalFile

	Unsupported *UnsupportedValue
}

func (f *File) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	f.Type = FileType(tag)

	switch f.Type {
	case FileTypeFile:
		f.File = &HostedFile{}
		return unmarshalVariant(frag, "file", f.File)
	case FileTypeExternal:
		f.External = &ExternalFile{}
		return unmarshalVariant(frag, "external", f.External)
	default:
		f.Unsupported = newUnsupported(tag, data)
		return nil
	}
}

func (f File) MarshalJSON() ([]byte, error) {
	if f.Unsupported != nil {
		return f.Unsupported.MarshalJSON()
	}

	type file struct {
		Type     FileType      `json:"type"`
		File     *HostedFile   `json:"file,omitempty"`
		External *ExternalFile `json:"external,omitempty"`
	}

	return json.Marshal(file{Type: f.Type, File: f.File, External: f.External})
}

// URL returns the file's URL regardless of hosting form.
func (f File) URL() string {
	switch {
	case f.File != nil:
		return f.File.URL
	case f.External != nil:
		return f.External.URL
	default:
		return ""
	}
}

// IconType names the variant of a page or callout icon.
type IconType string

const (
	IconTypeEmoji    IconType = "emoji"
	IconTypeFile     IconType = "file"
	IconTypeExternal IconType = "external"
)

// Icon is a page or callout icon: an emoji, or a file in either hosting
// form.
type Icon struct {
	Type IconType

	Emoji    string
	File     *HostedFile
	External *ExternalFile

	Unsupported *UnsupportedValue
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	i.Type = IconType(tag)

	switch i.Type {
	case IconTypeEmoji:
		i.Emoji, err = parseField[string](frag, "emoji")
		return err
	case IconTypeFile:
		i.File = &HostedFile{}
		return unmarshalVariant(frag, "file", i.File)
	case IconTypeExternal:
		i.External = &ExternalFile{}
		return unmarshalVariant(frag, "external", i.External)
	default:
		i.Unsupported = newUnsupported(tag, data)
		return nil
	}
}

func (i Icon) MarshalJSON() ([]byte, error) {
	if i.Unsupported != nil {
		return i.Unsupported.MarshalJSON()
	}

	obj := map[string]any{"type": i.Type}
	switch i.Type {
	case IconTypeEmoji:
		obj["emoji"] = i.Emoji
	case IconTypeFile:
		obj["file"] = i.File
	case IconTypeExternal:
		obj["external"] = i.External
	}

	return json.Marshal(obj)
}
