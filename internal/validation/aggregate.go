package validation

import (
	"strconv"
)

// TeamField addresses team-level semantic errors.
const TeamField = "team"

// ReportEntry is one error or warning in the merged report. PokemonSlot is
// set only for entries attributed to a single slot.
type ReportEntry struct {
	Field       string `json:"field"`
	Message     string `json:"message"`
	PokemonSlot *int   `json:"pokemonSlot,omitempty"`
}

// Report is the merged verdict of both validation phases.
type Report struct {
	FormatID string        `json:"formatId,omitempty"`
	IsValid  bool          `json:"isValid"`
	Errors   []ReportEntry `json:"errors"`
	Warnings []ReportEntry `json:"warnings"`
}

// Aggregate merges a structural and a semantic result for the same team.
// Structural entries come first, then slot entries in slot order, then team
// entries. A team-level message that is also reported on a slot is emitted
// once, as the slot entry. A nil semantic result means the semantic phase
// did not run and contributes nothing.
func Aggregate(structural ValidationResult, semantic *FormatValidationResult) *Report {
	report := &Report{
		IsValid:  structural.IsValid,
		Errors:   make([]ReportEntry, 0, len(structural.Errors)),
		Warnings: []ReportEntry{},
	}
	for _, fe := range structural.Errors {
		report.Errors = append(report.Errors, ReportEntry{Field: fe.Field, Message: fe.Message})
	}
	if semantic == nil {
		return report
	}

	report.FormatID = semantic.FormatID
	report.IsValid = report.IsValid && semantic.IsValid

	slotMessages := make(map[string]struct{})
	for _, slot := range semantic.Slots() {
		res := semantic.PokemonResults[slot]
		field := "pokemon." + strconv.Itoa(slot)
		for _, msg := range res.Errors {
			slotMessages[msg] = struct{}{}
			report.Errors = append(report.Errors, slotEntry(field, msg, slot))
		}
		for _, msg := range res.Warnings {
			report.Warnings = append(report.Warnings, slotEntry(field, msg, slot))
		}
	}

	for _, msg := range semantic.Errors {
		if _, dup := slotMessages[msg]; dup {
			continue
		}
		report.Errors = append(report.Errors, ReportEntry{Field: TeamField, Message: msg})
	}

	slotWarnings := make(map[string]struct{}, len(report.Warnings))
	for _, w := range report.Warnings {
		slotWarnings[w.Message] = struct{}{}
	}
	for _, msg := range semantic.Warnings {
		if _, dup := slotWarnings[msg]; dup {
			continue
		}
		report.Warnings = append(report.Warnings, ReportEntry{Field: TeamField, Message: msg})
	}
	return report
}

func slotEntry(field, msg string, slot int) ReportEntry {
	s := slot
	return ReportEntry{Field: field, Message: msg, PokemonSlot: &s}
}

// TeamErrors returns the errors not attributed to a slot: structural errors
// and team-level clause violations.
func (r *Report) TeamErrors() []ReportEntry {
	out := []ReportEntry{}
	for _, e := range r.Errors {
		if e.PokemonSlot == nil {
			out = append(out, e)
		}
	}
	return out
}

// PokemonErrors returns the errors attributed to slot.
func (r *Report) PokemonErrors(slot int) []ReportEntry {
	out := []ReportEntry{}
	for _, e := range r.Errors {
		if e.PokemonSlot != nil && *e.PokemonSlot == slot {
			out = append(out, e)
		}
	}
	return out
}

// Messages flattens the errors into their message strings.
func (r *Report) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}
