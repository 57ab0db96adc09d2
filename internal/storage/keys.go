package storage

import "fmt"

// EventPrefix returns the key prefix holding all assets of one event.
func EventPrefix(eventID string) string {
	return fmt.Sprintf("events/shared/%s/", eventID)
}

// CoverKey returns the key of an event's cover image.
func CoverKey(eventID string) string {
	return EventPrefix(eventID) + "cover.jpg"
}

// FolderKeys returns the four placeholder keys scaffolded for a new
// event, in the order they must be created. The event root comes
// first; later keys are only attempted if the earlier ones succeeded.
func FolderKeys(eventID string) []string {
	p := EventPrefix(eventID)
	return []string{
		p,
		p + "images/",
		p + "selfies/",
		p + "videos/",
	}
}
