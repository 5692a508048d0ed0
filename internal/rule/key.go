package rule

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Domain prefix for content-addressed rule identity. Version suffix enables
// future algorithm migration without colliding with old keys.
const keyDomain = "kairos/rule/v1"

// Key returns the cache identity of a rule.
//
// Named rules use the NFC-normalized name so that the same holiday supplied
// from different sources shares one cache slot. Unnamed rules fall back to a
// content-addressed hash of (type, payload), so two distinct ad-hoc rules
// never collide.
func Key(r *Rule) string {
	if r.Name != "" {
		return norm.NFC.String(r.Name)
	}
	return hashWithDomain(keyDomain, []byte(canonicalPayload(r)))
}

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalPayload serializes the type tag and payload fields in a fixed
// order. This is the ONLY serialization used for rule identity; it must stay
// stable across releases.
func canonicalPayload(r *Rule) string {
	switch r.Type {
	case TypeFixed:
		if r.Fixed != nil {
			return fmt.Sprintf("fixed|month=%d|day=%d", r.Fixed.Month, r.Fixed.Day)
		}
	case TypeNthWeekday:
		if r.NthWeekday != nil {
			return fmt.Sprintf("nth-weekday|month=%d|weekday=%d|nth=%d",
				r.NthWeekday.Month, r.NthWeekday.Weekday, r.NthWeekday.Nth)
		}
	case TypeEaster:
		if r.Easter != nil {
			variant := r.Easter.Variant
			if variant == "" {
				variant = EasterGregorian
			}
			return fmt.Sprintf("easter|variant=%s|offset=%d", variant, r.Easter.Offset)
		}
	case TypeLunar:
		if r.Lunar != nil {
			return fmt.Sprintf("lunar|calendar=%s|month=%d|day=%d",
				r.Lunar.Calendar, r.Lunar.Month, r.Lunar.Day)
		}
	case TypeRelative:
		if r.Relative != nil {
			return fmt.Sprintf("relative|to=%s|offset=%d",
				norm.NFC.String(r.Relative.RelativeTo), r.Relative.Offset)
		}
	case TypeCustom:
		if r.Custom != nil {
			return fmt.Sprintf("custom|func=%s", r.Custom.Func)
		}
	}
	// Malformed rules still get a stable, non-colliding key; validation
	// rejects them before any calculation is cached.
	return fmt.Sprintf("invalid|type=%s|id=%s", r.Type, r.ID)
}
