package http

import (
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/JensIssa/HotelBooking-Clean/pkg/errors"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

// ExtractID parses a positive integer path or query value.
func ExtractID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.InvalidInput("id must be an integer: " + raw)
	}
	return id, nil
}

// ExtractDateRange reads the 'start' and 'end' query parameters as
// day-granular dates. Both are required.
func ExtractDateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	startStr := query.Get("start")
	endStr := query.Get("end")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("both 'start' and 'end' query parameters are required")
	}

	start, err := model.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("invalid start date, must be " + model.DateFormat)
	}
	end, err := model.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("invalid end date, must be " + model.DateFormat)
	}

	return start, end, nil
}
