package orchestrator

import (
	"regexp"

	"calcom-assistant/internal/model"
	"calcom-assistant/internal/session"
)

var (
	emailRe = regexp.MustCompile(`(?i)[\w.+\-]+@[\w\-]+(?:\.[a-z]{2,})+`)
	// Case folding is scoped to the trigger phrase; the captured name
	// itself must be capitalized so "I'm jordan and..." doesn't swallow
	// the rest of the sentence.
	nameRe = regexp.MustCompile(`(?i:i['’]?m|my name is|this is|call me)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
)

// updateProfileFromMessage extracts email and name from free-text user
// messages. First value seen wins; later mentions never overwrite.
func (o *Orchestrator) updateProfileFromMessage(sess *session.Session, message string) {
	var observed model.Profile
	if m := emailRe.FindString(message); m != "" {
		observed.Email = m
	}
	if m := nameRe.FindStringSubmatch(message); m != nil {
		observed.Name = m[1]
	}
	sess.Profile.Merge(observed)
}

// updateProfileFromToolArgs caches name/email/timezone the model put
// into tool call arguments, so the next system message knows them.
func (o *Orchestrator) updateProfileFromToolArgs(sess *session.Session, name string, args map[string]interface{}) {
	var observed model.Profile

	switch name {
	case "create_booking":
		observed.Name = stringArg(args, "attendee_name")
		observed.Email = stringArg(args, "attendee_email")
		observed.Timezone = stringArg(args, "attendee_timezone")
	case "get_available_slots", "local_to_utc", "utc_to_local":
		observed.Timezone = stringArg(args, "time_zone")
		if observed.Timezone == "" {
			observed.Timezone = stringArg(args, "timezone")
		}
	}

	sess.Profile.Merge(observed)
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
