package youtube

import "strings"

// failurePhrases are the known upload/processing failure messages scanned
// for in the page's rendered text, most specific first.
var failurePhrases = []string{
	"processing abandoned",
	"upload failed",
	"can't process this video",
	"server rejected",
}

// genericFailurePhrases are only trusted inside a visible error region;
// scanning the whole page for them would false-positive on unrelated copy.
var genericFailurePhrases = []string{
	"error",
	"problem",
	"unable",
}

// failurePhrase scans rendered text for a known failure message and returns
// the first phrase found. errorRegion widens the scan to the generic
// phrases, which are only meaningful inside a dedicated error element.
func failurePhrase(text string, errorRegion bool) (string, bool) {
	lowered := strings.ToLower(text)
	for _, phrase := range failurePhrases {
		if strings.Contains(lowered, phrase) {
			return phrase, true
		}
	}
	if errorRegion {
		for _, phrase := range genericFailurePhrases {
			if strings.Contains(lowered, phrase) {
				return phrase, true
			}
		}
	}
	return "", false
}

// videoIDFromHref extracts the published identifier from a success-dialog
// link in either the short-URL or canonical video-URL form.
func videoIDFromHref(href string) (string, bool) {
	if href == "" {
		return "", false
	}
	if _, rest, found := strings.Cut(href, "youtu.be/"); found {
		id, _, _ := strings.Cut(rest, "?")
		if id != "" {
			return id, true
		}
	}
	if _, rest, found := strings.Cut(href, "youtube.com/video/"); found {
		id, _, _ := strings.Cut(rest, "/")
		if id != "" {
			return id, true
		}
	}
	return "", false
}

// videoIDFromPageURL falls back to parsing the wizard page's own URL.
func videoIDFromPageURL(url string) (string, bool) {
	if _, rest, found := strings.Cut(url, "/video/"); found {
		id, _, _ := strings.Cut(rest, "/")
		if id != "" {
			return id, true
		}
	}
	return "", false
}

// audienceRadioName is the value-name of the made-for-kids radio.
func audienceRadioName(madeForKids bool) string {
	if madeForKids {
		return "MADE_FOR_KIDS"
	}
	return "NOT_MADE_FOR_KIDS"
}

// audienceLabel is the visible label used for the text-based fallback.
func audienceLabel(madeForKids bool) string {
	if madeForKids {
		return "Yes, it's made for kids"
	}
	return "No, it's not made for kids"
}
