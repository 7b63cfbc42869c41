package verification

import (
	"fmt"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

const dateLayout = "2006-01-02"

// CheckFlagged fails when the history carries a BATCH_FLAG or an entry that
// could not be read, since an unreadable entry may be a flag.
func CheckFlagged(events []model.Event) model.CheckResult {
	var (
		flags     []string
		malformed int
	)
	for _, ev := range events {
		if ev.Malformed {
			malformed++
			continue
		}
		if ev.Is(model.EventBatchFlag) {
			flags = append(flags, fmt.Sprintf("Flagged by %s: %s",
				orDefault(ev.OrganizationID, "unknown organization"),
				orDefault(ev.FlagReason, "no reason given")))
		}
	}
	if malformed > 0 {
		flags = append(flags, fmt.Sprintf("History contains %d unreadable entries", malformed))
	}
	if len(flags) > 0 {
		return failed(model.CheckFlagged, strings.Join(flags, "; "))
	}
	return passed(model.CheckFlagged, "No flags recorded.")
}

// CheckProvenance requires a BATCH_CREATED event.
func CheckProvenance(events []model.Event) model.CheckResult {
	if _, ok := firstOf(events, model.EventBatchCreated); ok {
		return passed(model.CheckProvenance, "Creation record found.")
	}
	return failed(model.CheckProvenance, "No creation record found; this batch may not originate from our system.")
}

// CheckCustody requires at least one ownership transfer.
func CheckCustody(events []model.Event) model.CheckResult {
	if _, ok := firstOf(events, model.EventBatchOwnership); ok {
		return passed(model.CheckCustody, "Batch entered the supply chain.")
	}
	return failed(model.CheckCustody, "This batch has not yet entered the supply chain.")
}

// CheckExpiry compares the expiry date of the first BATCH_CREATED event with
// now. A date without a time is valid until the end of that UTC day.
func CheckExpiry(events []model.Event, now time.Time) model.CheckResult {
	created, ok := firstOf(events, model.EventBatchCreated)
	if !ok || created.ExpiryDate == "" {
		return passed(model.CheckExpiry, "No expiry date recorded.")
	}

	expiresAt, err := parseExpiry(created.ExpiryDate)
	if err != nil {
		return failed(model.CheckExpiry, fmt.Sprintf("Expiry date %q could not be read.", created.ExpiryDate))
	}
	if !now.Before(expiresAt) {
		return failed(model.CheckExpiry, fmt.Sprintf("Batch expired on %s.", created.ExpiryDate))
	}
	return passed(model.CheckExpiry, fmt.Sprintf("Valid until %s.", created.ExpiryDate))
}

func parseExpiry(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t.AddDate(0, 0, 1), nil
	}
	return time.Parse(time.RFC3339, raw)
}

// CheckOwnership requires both endpoints on every transfer. With strict set
// the transfers must also form a continuous chain.
func CheckOwnership(events []model.Event, strict bool) model.CheckResult {
	var (
		problems []string
		prevTo   string
	)
	for _, ev := range events {
		if !ev.Is(model.EventBatchOwnership) {
			continue
		}
		if ev.TransferFrom == "" || ev.TransferTo == "" {
			problems = append(problems, fmt.Sprintf("Transfer at sequence %d is missing transferFrom or transferTo", ev.SequenceNumber))
			prevTo = ""
			continue
		}
		if strict && prevTo != "" && prevTo != ev.TransferFrom {
			problems = append(problems, fmt.Sprintf("Custody chain broken at sequence %d: expected transfer from %s, got %s",
				ev.SequenceNumber, prevTo, ev.TransferFrom))
		}
		prevTo = ev.TransferTo
	}
	if len(problems) > 0 {
		return failed(model.CheckOwnership, strings.Join(problems, "; "))
	}
	return passed(model.CheckOwnership, "Ownership transfers are well-formed.")
}

// CheckUnitRegistered fails when the batch has registered units and unitID is
// not one of them. Batches without UNIT entries pass.
func CheckUnitRegistered(events []model.Event, unitID, batchID string) model.CheckResult {
	registered := 0
	for _, ev := range events {
		if !ev.Is(model.EventUnit) {
			continue
		}
		registered++
		if ev.SerialNumber == unitID {
			return passed(model.CheckUnitRegistered, fmt.Sprintf("Unit %s is registered to batch %s.", unitID, batchID))
		}
	}
	if registered == 0 || unitID == "" {
		return passed(model.CheckUnitRegistered, "No unit registrations to check against.")
	}
	return failed(model.CheckUnitRegistered, fmt.Sprintf("Unit %s is not registered to batch %s", unitID, batchID))
}

// HasFlag reports whether the history already carries a BATCH_FLAG.
func HasFlag(events []model.Event) bool {
	_, ok := firstOf(events, model.EventBatchFlag)
	return ok
}

func duplicateScanResult(unitID string, prior *model.ScanRecord) model.CheckResult {
	if prior == nil {
		return passed(model.CheckDuplicateScan, fmt.Sprintf("First scan of unit %s.", unitID))
	}
	return failed(model.CheckDuplicateScan, fmt.Sprintf("Duplicate scan detected: unit %s was already scanned at %s",
		unitID, prior.ScannedAt.UTC().Format(time.RFC3339)))
}

func firstOf(events []model.Event, t model.EventType) (model.Event, bool) {
	for _, ev := range events {
		if ev.Is(t) {
			return ev, true
		}
	}
	return model.Event{}, false
}

func passed(name model.CheckName, reason string) model.CheckResult {
	return model.CheckResult{Name: name, Passed: true, Reason: reason}
}

func failed(name model.CheckName, reason string) model.CheckResult {
	return model.CheckResult{Name: name, Passed: false, Reason: reason}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
