package domain

import "slices"

// Normalize maps the edit buffer and the derived classification and tag
// state to the patch sent to the store. It cannot fail.
//
// Rules:
//   - present scalar fields pass through, absent ones are omitted
//   - a nil classification clears the remote classification; otherwise only
//     its value is sent
//   - non-empty tags replace the remote tags; empty tags are omitted and do
//     NOT clear them
func Normalize(buf EditBuffer, classification *Classification, tags []string) Patch {
	var p Patch

	if buf.Len() > 0 {
		p.Fields = make(map[Field]*string, buf.Len())
		for f, v := range buf.values {
			p.Fields[f] = cloneText(v)
		}
	}

	if classification == nil {
		p.Classification = ClassificationCleared
	} else {
		p.Classification = ClassificationSet
		p.ClassificationValue = classification.Value
	}

	if len(tags) > 0 {
		p.Tags = slices.Clone(tags)
	}

	return p
}
