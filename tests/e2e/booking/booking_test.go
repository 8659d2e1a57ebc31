//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"lendly/internal/handler/dto/request"
	"lendly/internal/handler/dto/response"
	"lendly/tests/common/authtest"
	"lendly/tests/common/dbtest"
	"lendly/tests/common/httptest"
	"lendly/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	ownerBookingsURL = "/api/bookings/owner"
	itemsURL         = "/api/items"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createBooking(t *testing.T, token string, itemID uuid.UUID, start, end time.Time) *nethttptest.ResponseRecorder {
	t.Helper()
	reqBody := request.CreateBookingRequest{
		ItemID:    itemID,
		StartTime: start,
		EndTime:   end,
	}
	return httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
}

// =============================================================================
// TestBookingLifecycle - create, conflict, decide, list
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: renter books an item and the owner approves", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Taro Yamada", "owner@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Camping Tent", true)

		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter@example.com")

		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		end := start.Add(48 * time.Hour)

		w := s.createBooking(t, renterToken, itemID, start, end)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "waiting", created.Status)
		require.Equal(t, itemID, created.ItemID)

		// Owner approves
		decideURL := bookingsURL + "/" + created.ID.String() + "?approved=true"
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())

		var decided response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &decided))
		require.Equal(t, "approved", decided.Status)
	})

	s.Run("Error case: overlapping period is rejected with 409", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner2@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)

		_, firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter2@example.com")
		_, secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Jiro Tanaka", "renter3@example.com")

		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		end := start.Add(48 * time.Hour)

		w1 := s.createBooking(t, firstToken, itemID, start, end)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// Half-open intervals: sharing a boundary instant is fine, overlap is not.
		w2 := s.createBooking(t, secondToken, itemID, start.Add(24*time.Hour), end.Add(24*time.Hour))
		require.Equal(t, http.StatusConflict, w2.Code, "overlapping booking should conflict")

		w3 := s.createBooking(t, secondToken, itemID, end, end.Add(24*time.Hour))
		require.Equal(t, http.StatusCreated, w3.Code, "back-to-back booking should not conflict")
	})

	s.Run("Normal case: owner can book their own item", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Taro Yamada", "owner3@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		w := s.createBooking(t, ownerToken, itemID, start, start.Add(24*time.Hour))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "waiting", created.Status)
		require.Equal(t, ownerID, created.RenterID)
	})

	s.Run("Error case: conflict wins over an unknown renter", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner12@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Generator", true)

		renterID := dbtest.CreateTestUser(t, s.DB, "Hanako Suzuki", "renter12@example.com")
		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		end := start.Add(48 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, start, end, "waiting")

		// Ghost renter: the token stays valid after the account is deleted
		_, ghostToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Jiro Tanaka", "ghost@example.com")
		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/users/me", nil, ghostToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		w := s.createBooking(t, ghostToken, itemID, start.Add(time.Hour), end.Add(time.Hour))
		require.Equal(t, http.StatusConflict, w.Code, "overlap should be reported before the renter lookup")
	})

	s.Run("Error case: only the item owner can decide", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner4@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Kayak", true)

		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter4@example.com")
		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Jiro Tanaka", "stranger@example.com")

		start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		w := s.createBooking(t, renterToken, itemID, start, start.Add(24*time.Hour))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		decideURL := bookingsURL + "/" + created.ID.String() + "?approved=true"
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, strangerToken)
		require.Equal(t, http.StatusBadRequest, dw.Code, "non-owner decision should be rejected")
	})

	s.Run("Normal case: bucket filters split renter bookings by time and status", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner5@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Projector", true)

		renterID, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter5@example.com")

		now := time.Now().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), "approved")
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-1*time.Hour), now.Add(1*time.Hour), "approved")
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(48*time.Hour), now.Add(72*time.Hour), "waiting")
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(96*time.Hour), now.Add(120*time.Hour), "rejected")

		cases := []struct {
			state string
			count int
		}{
			{"ALL", 4},
			{"PAST", 1},
			{"CURRENT", 1},
			{"FUTURE", 2}, // waiting and rejected bookings both start later
			{"WAITING", 1},
			{"REJECTED", 1},
		}

		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state="+tc.state, nil, renterToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var list []response.BookingListResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
			require.Len(t, list, tc.count, "state=%s", tc.state)
		}

		// Every listing comes back newest start first
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=ALL", nil, renterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var all []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))
		require.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			require.False(t, all[i-1].StartTime.Before(all[i].StartTime),
				"bookings should be ordered by start descending")
		}

		// Unknown filter token fails fast
		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=waiting", nil, renterToken)
		require.Equal(t, http.StatusBadRequest, bw.Code, "lowercase token should be rejected")
	})

	s.Run("Normal case: owner sees bookings placed on their items", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Taro Yamada", "owner6@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Speaker", true)

		renterID := dbtest.CreateTestUser(t, s.DB, "Hanako Suzuki", "renter6@example.com")
		now := time.Now().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(24*time.Hour), now.Add(48*time.Hour), "waiting")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerBookingsURL+"?state=WAITING", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var list []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, "Hanako Suzuki", list[0].RenterName)
	})
}

// =============================================================================
// TestCommentGate - comments require a finished approved rental
// =============================================================================

func (s *BookingSuite) TestCommentGate() {
	s.Run("Error case: no finished rental means no comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner7@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)

		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter7@example.com")

		commentURL := itemsURL + "/" + itemID.String() + "/comments"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL,
			request.AddCommentRequest{Text: "Looks great"}, renterToken)
		require.Equal(t, http.StatusBadRequest, w.Code, "comment before any rental should be rejected")
	})

	s.Run("Normal case: comment allowed after a finished approved rental", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Taro Yamada", "owner8@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)

		renterID, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter8@example.com")

		now := time.Now().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), "approved")

		commentURL := itemsURL + "/" + itemID.String() + "/comments"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL,
			request.AddCommentRequest{Text: "Great tent, easy to pitch"}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var comment response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &comment))
		require.Equal(t, "Great tent, easy to pitch", comment.Text)
		require.Equal(t, renterID, comment.AuthorID)

		// Comment shows up on the item view for everyone
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, ownerToken)
		require.Equal(t, http.StatusOK, iw.Code)

		var item response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &item))
		require.Len(t, item.Comments, 1)
		require.Equal(t, "Hanako Suzuki", item.Comments[0].AuthorName)
	})

	s.Run("Error case: waiting or ongoing rentals do not unlock comments", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner9@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)

		renterID, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Hanako Suzuki", "renter9@example.com")

		now := time.Now().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "waiting")
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-1*time.Hour), now.Add(1*time.Hour), "approved")

		commentURL := itemsURL + "/" + itemID.String() + "/comments"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL,
			request.AddCommentRequest{Text: "Too early"}, renterToken)
		require.Equal(t, http.StatusBadRequest, w.Code, "only finished approved rentals unlock comments")
	})
}

// =============================================================================
// TestItemNearestBookings - owners see last/next bookings, others do not
// =============================================================================

func (s *BookingSuite) TestItemNearestBookings() {
	s.Run("Normal case: owner view carries nearest past and upcoming bookings", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Taro Yamada", "owner10@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Canoe", true)

		renterID := dbtest.CreateTestUser(t, s.DB, "Hanako Suzuki", "renter10@example.com")
		now := time.Now().Truncate(time.Second)
		// Status does not matter for last/next: only the start instant does
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-96*time.Hour), now.Add(-72*time.Hour), "approved")
		lastID := dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "rejected")
		nextID := dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(24*time.Hour), now.Add(48*time.Hour), "waiting")
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(72*time.Hour), now.Add(96*time.Hour), "approved")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var item response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &item))
		require.NotNil(t, item.LastBooking, "owner should see the most recent finished booking")
		require.Equal(t, lastID, item.LastBooking.ID)
		require.NotNil(t, item.NextBooking, "owner should see the next upcoming booking")
		require.Equal(t, nextID, item.NextBooking.ID)
	})

	s.Run("Normal case: non-owner view omits booking details", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Taro Yamada", "owner11@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Canoe", true)

		renterID := dbtest.CreateTestUser(t, s.DB, "Hanako Suzuki", "renter11@example.com")
		now := time.Now().Truncate(time.Second)
		dbtest.CreateTestBooking(t, s.DB, itemID, renterID, now.Add(24*time.Hour), now.Add(48*time.Hour), "approved")

		_, viewerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Jiro Tanaka", "viewer@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, viewerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var item response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &item))
		require.Nil(t, item.LastBooking, "non-owner should not see booking details")
		require.Nil(t, item.NextBooking, "non-owner should not see booking details")
	})
}
