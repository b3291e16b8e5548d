package helpers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TimestamptzFromTime converts a time.Time into a valid pgtype.Timestamptz.
func TimestamptzFromTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// TimestamptzFromTimePtr converts an optional time into a pgtype.Timestamptz,
// invalid (NULL) when nil.
func TimestamptzFromTimePtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// Float8FromPtr converts an optional float into a pgtype.Float8, invalid
// (NULL) when nil.
func Float8FromPtr(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

// Int4FromPtr converts an optional int32 into a pgtype.Int4, invalid (NULL)
// when nil.
func Int4FromPtr(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}

// Float8Ptr converts a pgtype.Float8 into an optional float.
func Float8Ptr(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// Int4Ptr converts a pgtype.Int4 into an optional int32.
func Int4Ptr(i pgtype.Int4) *int32 {
	if !i.Valid {
		return nil
	}
	v := i.Int32
	return &v
}

// UnixOrZero returns the Unix seconds of a nullable timestamp, zero when NULL.
func UnixOrZero(t pgtype.Timestamptz) int64 {
	if !t.Valid {
		return 0
	}
	return t.Time.Unix()
}

// UnixPtr returns the Unix seconds of a nullable timestamp as an optional.
func UnixPtr(t pgtype.Timestamptz) *int64 {
	if !t.Valid {
		return nil
	}
	v := t.Time.Unix()
	return &v
}
