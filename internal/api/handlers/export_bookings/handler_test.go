package export_bookings

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

func TestParseRequest(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/bookings/export?search=jane&status=pending&sessionType=Reformer+Class", nil)

	req, err := parseRequest(r)

	require.NoError(t, err)
	assert.Equal(t, "jane", req.Search)
	require.NotNil(t, req.Status)
	assert.Equal(t, domain.BookingStatusPending, *req.Status)
	require.NotNil(t, req.SessionTypeName)
	assert.Equal(t, "Reformer Class", *req.SessionTypeName)
}

func TestParseRequest_AllMeansNoFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/bookings/export?status=all&sessionType=All", nil)

	req, err := parseRequest(r)

	require.NoError(t, err)
	assert.Nil(t, req.Status)
	assert.Nil(t, req.SessionTypeName)
}

func TestParseRequest_InvalidDate(t *testing.T) {
	r := httptest.NewRequest("GET", "/bookings/export?startDate=junk", nil)

	_, err := parseRequest(r)
	assert.Error(t, err)
}
