package repository

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

// NUMERIC columns travel as fixed-point text; callers only ever see float64.

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return v, nil
}

func parseNullDecimal(s sql.NullString) (*float64, error) {
	if !s.Valid {
		return nil, nil
	}
	v, err := parseDecimal(s.String)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func decimalArg(v *float64) any {
	if v == nil {
		return nil
	}
	return formatDecimal(*v)
}

func nullableDecimalArg(n model.Nullable[float64]) any {
	return decimalArg(n.Ptr())
}
