package model

import "strings"

// AttachmentKind classifies an attachment URL by its file extension so the
// viewer side can decide how to present it.
type AttachmentKind int

const (
	AttachmentNone AttachmentKind = iota
	AttachmentImage
	AttachmentVideo
	AttachmentDocument
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

var videoExtensions = []string{
	".mp4", ".avi", ".mov", ".wmv", ".flv", ".mkv", ".webm", ".ogg", ".3gp", ".mpeg",
}

func (m Message) AttachmentKind() AttachmentKind {
	if m.Attachment == "" {
		return AttachmentNone
	}
	lower := strings.ToLower(trimURLSuffix(m.Attachment))
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return AttachmentImage
		}
	}
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return AttachmentVideo
		}
	}
	return AttachmentDocument
}

// AttachmentExtension returns the bare file extension of the attachment
// URL, without query or fragment parts.
func (m Message) AttachmentExtension() string {
	trimmed := trimURLSuffix(m.Attachment)
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 || idx == len(trimmed)-1 {
		return ""
	}
	return trimmed[idx+1:]
}

func trimURLSuffix(url string) string {
	if i := strings.IndexAny(url, "#?"); i >= 0 {
		return url[:i]
	}
	return url
}
