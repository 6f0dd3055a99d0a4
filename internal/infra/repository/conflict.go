package repository

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// classifyTxError turns a lost booking race into a Conflict. The caller must
// resubmit; nothing here retries, since a retry could book a slot the caller
// never saw.
func classifyTxError(err error) error {
	switch {
	case err == nil:
		return nil
	case httperr.IsExclusionConflict(err), httperr.IsSerializationFailure(err):
		return httperr.ErrConflict(
			"booking_conflict",
			"Another booking took this time. Please choose a slot again.",
		)
	case httperr.IsUniqueViolation(err):
		return httperr.ErrConflict("duplicate_record", "Record already exists.")
	}
	return err
}
