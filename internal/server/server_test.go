package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	mock_server "github.com/Devadharshani13/SmartPlate/internal/server/mocks"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

var testSecret = []byte("test-secret")

var (
	ngoActor       = lifecycle.Actor{ID: "ngo-1", Role: lifecycle.RoleNGO, Verification: lifecycle.VerificationVerified}
	donorActor     = lifecycle.Actor{ID: "donor-1", Role: lifecycle.RoleDonor}
	volunteerActor = lifecycle.Actor{ID: "vol-1", Role: lifecycle.RoleVolunteer, Verification: lifecycle.VerificationVerified}
	adminActor     = lifecycle.Actor{ID: "admin-1", Role: lifecycle.RoleAdmin}
)

type testServer struct {
	service *mock_server.MockService
	photos  *mock_server.MockPhotoStore
	handler http.Handler
}

func newTestServer(t *testing.T, withPhotos bool) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{service: mock_server.NewMockService(ctrl)}
	opts := Options{JWTSecret: testSecret}
	if withPhotos {
		ts.photos = mock_server.NewMockPhotoStore(ctrl)
		opts.Photos = ts.photos
	}
	ts.handler = New(ts.service, opts).Handler()
	return ts
}

func token(t *testing.T, actor lifecycle.Actor) string {
	t.Helper()
	signed, err := IssueToken(testSecret, actor.ID, actor.Role, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return signed
}

// as expects the actor lookup the middleware does for every profile route.
func (ts *testServer) as(actor lifecycle.Actor) {
	ts.service.EXPECT().ResolveActor(gomock.Any(), actor.ID, actor.Role).Return(actor, nil)
}

func (ts *testServer) do(t *testing.T, actor *lifecycle.Actor, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+token(t, *actor))
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func pendingRequest() lifecycle.FoodRequest {
	return lifecycle.FoodRequest{
		ID:       "req-1",
		NGOID:    "ngo-1",
		FoodType: "rice",
		Quantity: 40,
		Status:   lifecycle.StatusPending,
		Version:  1,
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		setupMocks     func(ts *testServer)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "missing token",
			setupMocks:     func(*testServer) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name:           "garbage token",
			header:         "Bearer not-a-jwt",
			setupMocks:     func(*testServer) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name: "token signed with another secret",
			header: func() string {
				signed, _ := IssueToken([]byte("other"), "ngo-1", lifecycle.RoleNGO, jwt.RegisteredClaims{})
				return "Bearer " + signed
			}(),
			setupMocks:     func(*testServer) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name: "expired token",
			header: func() string {
				signed, _ := IssueToken(testSecret, "ngo-1", lifecycle.RoleNGO, jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				})
				return "Bearer " + signed
			}(),
			setupMocks:     func(*testServer) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name: "subject without a profile",
			header: func() string {
				signed, _ := IssueToken(testSecret, "ngo-1", lifecycle.RoleNGO, jwt.RegisteredClaims{})
				return "Bearer " + signed
			}(),
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().ResolveActor(gomock.Any(), "ngo-1", lifecycle.RoleNGO).
					Return(lifecycle.Actor{}, fmt.Errorf("%w: user ngo-1", storage.ErrNotFound))
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "profile_required",
		},
		{
			name: "token role differs from the profile",
			header: func() string {
				signed, _ := IssueToken(testSecret, "ngo-1", lifecycle.RoleAdmin, jwt.RegisteredClaims{})
				return "Bearer " + signed
			}(),
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().ResolveActor(gomock.Any(), "ngo-1", lifecycle.RoleAdmin).
					Return(lifecycle.Actor{}, storage.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, false)
			tt.setupMocks(ts)

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			ts.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var body errorBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body.Code)
		})
	}
}

func TestHandleRegisterProfile(t *testing.T) {
	input := storage.ProfileInput{Name: "Food Bank", Email: "bank@example.org", Organization: "Food Bank Trust"}

	t.Run("profile is created without an existing one", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.service.EXPECT().RegisterProfile(gomock.Any(), "ngo-1", lifecycle.RoleNGO, input).
			Return(lifecycle.User{ID: "ngo-1", Role: lifecycle.RoleNGO, Name: "Food Bank", Verification: lifecycle.VerificationPending}, nil)

		rec := ts.do(t, &ngoActor, http.MethodPost, "/api/profile", input)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var user lifecycle.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, lifecycle.VerificationPending, user.Verification)
	})

	t.Run("second registration conflicts", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.service.EXPECT().RegisterProfile(gomock.Any(), "ngo-1", lifecycle.RoleNGO, input).
			Return(lifecycle.User{}, storage.ErrAlreadyRegistered)

		rec := ts.do(t, &ngoActor, http.MethodPost, "/api/profile", input)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"profile already registered","code":"conflict"}`, rec.Body.String())
	})
}

func TestHandleCreateRequest(t *testing.T) {
	input := lifecycle.CreateInput{FoodType: "rice", FoodCategory: "cooked", Quantity: 40, QuantityUnit: "plates", PeopleCount: 40}

	tests := []struct {
		name           string
		actor          lifecycle.Actor
		body           interface{}
		setupMocks     func(ts *testServer)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "ngo creates a request",
			actor: ngoActor,
			body:  input,
			setupMocks: func(ts *testServer) {
				ts.as(ngoActor)
				ts.service.EXPECT().CreateRequest(gomock.Any(), ngoActor, input).Return(pendingRequest(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "donors cannot create requests",
			actor: donorActor,
			body:  input,
			setupMocks: func(ts *testServer) {
				ts.as(donorActor)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "forbidden",
		},
		{
			name:  "unverified ngo",
			actor: ngoActor,
			body:  input,
			setupMocks: func(ts *testServer) {
				ts.as(ngoActor)
				ts.service.EXPECT().CreateRequest(gomock.Any(), ngoActor, input).
					Return(lifecycle.FoodRequest{}, lifecycle.ErrVerificationRequired)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "verification_required",
		},
		{
			name:  "validation failure",
			actor: ngoActor,
			body:  input,
			setupMocks: func(ts *testServer) {
				ts.as(ngoActor)
				ts.service.EXPECT().CreateRequest(gomock.Any(), ngoActor, input).
					Return(lifecycle.FoodRequest{}, fmt.Errorf("%w: quantity must be positive", lifecycle.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_input",
		},
		{
			name:  "malformed body",
			actor: ngoActor,
			body:  "not an object",
			setupMocks: func(ts *testServer) {
				ts.as(ngoActor)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, false)
			tt.setupMocks(ts)

			rec := ts.do(t, &tt.actor, http.MethodPost, "/api/ngo/requests", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var body errorBody
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedCode, body.Code)
			}
		})
	}
}

func TestHandleAccept(t *testing.T) {
	accepted := pendingRequest()
	accepted.Status = lifecycle.StatusAcceptedByDonor
	accepted.DonorID = donorActor.ID
	accepted.VolunteerID = volunteerActor.ID
	input := lifecycle.AcceptInput{AvailabilityTime: "18:00", FoodCondition: "fresh"}

	tests := []struct {
		name           string
		setupMocks     func(ts *testServer)
		expectedStatus int
		check          func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "accepted with a volunteer",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().Accept(gomock.Any(), donorActor, "req-1", input).Return(storage.Outcome{Request: accepted}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var out storage.Outcome
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
				assert.Equal(t, "vol-1", out.Request.VolunteerID)
				assert.False(t, out.AssignmentDeferred)
			},
		},
		{
			name: "accepted while no volunteer is free",
			setupMocks: func(ts *testServer) {
				deferred := accepted
				deferred.VolunteerID = ""
				ts.service.EXPECT().Accept(gomock.Any(), donorActor, "req-1", input).
					Return(storage.Outcome{Request: deferred, AssignmentDeferred: true}, nil)
			},
			expectedStatus: http.StatusAccepted,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var out storage.Outcome
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
				assert.True(t, out.AssignmentDeferred)
				assert.Equal(t, lifecycle.StatusAcceptedByDonor, out.Request.Status)
			},
		},
		{
			name: "another donor won",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().Accept(gomock.Any(), donorActor, "req-1", input).
					Return(storage.Outcome{}, fmt.Errorf("%w: request req-1 is already accepted_by_donor", lifecycle.ErrAlreadyAccepted))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "retries exhausted",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().Accept(gomock.Any(), donorActor, "req-1", input).Return(storage.Outcome{}, storage.ErrConcurrentUpdate)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, false)
			ts.as(donorActor)
			tt.setupMocks(ts)

			rec := ts.do(t, &donorActor, http.MethodPost, "/api/donor/requests/req-1/accept", input)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestVolunteerTransitions(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(ts *testServer)
		expectedStatus int
	}{
		{
			name: "pick up",
			path: "/api/volunteer/requests/req-1/pickup",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().PickUp(gomock.Any(), volunteerActor, "req-1").Return(storage.Outcome{Request: pendingRequest()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "transit out of order",
			path: "/api/volunteer/requests/req-1/transit",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().StartTransit(gomock.Any(), volunteerActor, "req-1").
					Return(storage.Outcome{}, fmt.Errorf("%w: request req-1 is pending, not picked_up", lifecycle.ErrInvalidTransition))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "extra volunteer deferred",
			path: "/api/volunteer/requests/req-1/extra-volunteer",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().RequestExtraVolunteer(gomock.Any(), volunteerActor, "req-1", "heavy_load").
					Return(storage.Outcome{Request: pendingRequest(), AssignmentDeferred: true}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "deliver with a photo url",
			path: "/api/volunteer/requests/req-1/deliver",
			setupMocks: func(ts *testServer) {
				ts.service.EXPECT().Deliver(gomock.Any(), volunteerActor, "req-1", lifecycle.DeliverInput{PhotoURL: "https://cdn/p.jpg"}).
					Return(storage.Outcome{Request: pendingRequest()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	bodies := map[string]interface{}{
		"/api/volunteer/requests/req-1/extra-volunteer": map[string]string{"reason": "heavy_load"},
		"/api/volunteer/requests/req-1/deliver":         map[string]string{"delivery_photo_url": "https://cdn/p.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, false)
			ts.as(volunteerActor)
			tt.setupMocks(ts)

			rec := ts.do(t, &volunteerActor, http.MethodPost, tt.path, bodies[tt.path])
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleDeliver_Photo(t *testing.T) {
	inTransit := pendingRequest()
	inTransit.Status = lifecycle.StatusInTransit
	inTransit.VolunteerID = volunteerActor.ID
	body := map[string]string{"delivery_photo": "aGVsbG8="}

	t.Run("photo is uploaded before delivering", func(t *testing.T) {
		ts := newTestServer(t, true)
		ts.as(volunteerActor)
		gomock.InOrder(
			ts.service.EXPECT().GetRequest(gomock.Any(), volunteerActor, "req-1").Return(inTransit, nil),
			ts.photos.EXPECT().UploadBase64(gomock.Any(), "req-1", "aGVsbG8=").Return("https://cdn/deliveries/req-1/a.jpg", nil),
			ts.service.EXPECT().Deliver(gomock.Any(), volunteerActor, "req-1", lifecycle.DeliverInput{PhotoURL: "https://cdn/deliveries/req-1/a.jpg"}).
				Return(storage.Outcome{Request: inTransit}, nil),
		)

		rec := ts.do(t, &volunteerActor, http.MethodPost, "/api/volunteer/requests/req-1/deliver", body)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no upload for a request the volunteer cannot deliver", func(t *testing.T) {
		ts := newTestServer(t, true)
		ts.as(volunteerActor)
		pickedUp := inTransit
		pickedUp.Status = lifecycle.StatusPickedUp
		ts.service.EXPECT().GetRequest(gomock.Any(), volunteerActor, "req-1").Return(pickedUp, nil)

		rec := ts.do(t, &volunteerActor, http.MethodPost, "/api/volunteer/requests/req-1/deliver", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejected image", func(t *testing.T) {
		ts := newTestServer(t, true)
		ts.as(volunteerActor)
		ts.service.EXPECT().GetRequest(gomock.Any(), volunteerActor, "req-1").Return(inTransit, nil)
		ts.photos.EXPECT().UploadBase64(gomock.Any(), "req-1", "aGVsbG8=").Return("", errors.New("photo is not a jpeg, png or webp image"))

		rec := ts.do(t, &volunteerActor, http.MethodPost, "/api/volunteer/requests/req-1/deliver", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("uploads not configured", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(volunteerActor)

		rec := ts.do(t, &volunteerActor, http.MethodPost, "/api/volunteer/requests/req-1/deliver", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleConfirmReceipt(t *testing.T) {
	ts := newTestServer(t, false)
	ts.as(ngoActor)
	input := lifecycle.ConfirmInput{Rating: 5, Feedback: "on time"}
	completed := pendingRequest()
	completed.Status = lifecycle.StatusCompleted
	ts.service.EXPECT().ConfirmReceipt(gomock.Any(), ngoActor, "req-1", input).Return(storage.Outcome{Request: completed}, nil)

	rec := ts.do(t, &ngoActor, http.MethodPost, "/api/ngo/requests/req-1/confirm", input)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out storage.Outcome
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, lifecycle.StatusCompleted, out.Request.Status)
}

func TestReads(t *testing.T) {
	t.Run("donor feed", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(donorActor)
		ts.service.EXPECT().DonorFeed(gomock.Any(), donorActor).Return([]lifecycle.FoodRequest{pendingRequest()}, nil)

		rec := ts.do(t, &donorActor, http.MethodGet, "/api/donor/requests", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var feed []lifecycle.FoodRequest
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&feed))
		assert.Len(t, feed, 1)
	})

	t.Run("request hidden from outsiders", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(volunteerActor)
		ts.service.EXPECT().GetRequest(gomock.Any(), volunteerActor, "req-9").
			Return(lifecycle.FoodRequest{}, fmt.Errorf("%w: request req-9", storage.ErrNotFound))

		rec := ts.do(t, &volunteerActor, http.MethodGet, "/api/requests/req-9", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("permitted actions", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(donorActor)
		ts.service.EXPECT().RequestActions(gomock.Any(), donorActor, "req-1").
			Return(storage.ActionsView{Request: pendingRequest(), Actions: []lifecycle.Action{lifecycle.ActionAccept}}, nil)

		rec := ts.do(t, &donorActor, http.MethodGet, "/api/requests/req-1/actions", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var view map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
		assert.JSONEq(t, `["accept"]`, string(view["actions"]))
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(volunteerActor)
		ts.service.EXPECT().VolunteerTasks(gomock.Any(), volunteerActor).Return(nil, errors.New("pq: connection refused"))

		rec := ts.do(t, &volunteerActor, http.MethodGet, "/api/volunteer/tasks", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal error","code":"internal"}`, rec.Body.String())
	})
}

func TestHandleAuditLogs(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedLimit  int
		expectedStatus int
	}{
		{name: "default limit", expectedLimit: 100, expectedStatus: http.StatusOK},
		{name: "explicit limit", query: "?limit=5", expectedLimit: 5, expectedStatus: http.StatusOK},
		{name: "limit is capped", query: "?limit=5000", expectedLimit: 1000, expectedStatus: http.StatusOK},
		{name: "invalid limit", query: "?limit=abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, false)
			ts.as(adminActor)
			if tt.expectedStatus == http.StatusOK {
				ts.service.EXPECT().AuditLogs(gomock.Any(), adminActor, tt.expectedLimit).Return([]storage.AuditLog{}, nil)
			}

			rec := ts.do(t, &adminActor, http.MethodGet, "/api/admin/audit-logs"+tt.query, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleUsers(t *testing.T) {
	accounts := []lifecycle.User{
		{ID: "ngo-1", Role: lifecycle.RoleNGO, Name: "Annam Trust", Verification: lifecycle.VerificationVerified},
		{ID: "vol-7", Role: lifecycle.RoleVolunteer, Name: "Priya", Verification: lifecycle.VerificationPending},
	}

	t.Run("admin lists every account", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(adminActor)
		ts.service.EXPECT().Users(gomock.Any(), adminActor, lifecycle.Role(0)).Return(accounts, nil)

		rec := ts.do(t, &adminActor, http.MethodGet, "/api/admin/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "ngo-1", got[0]["user_id"])
		assert.Equal(t, "volunteer", got[1]["role"])
	})

	t.Run("filtered by role", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(adminActor)
		ts.service.EXPECT().Users(gomock.Any(), adminActor, lifecycle.RoleVolunteer).Return(accounts[1:], nil)

		rec := ts.do(t, &adminActor, http.MethodGet, "/api/admin/users?role=Volunteer", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(adminActor)

		rec := ts.do(t, &adminActor, http.MethodGet, "/api/admin/users?role=chef", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("donor is forbidden", func(t *testing.T) {
		ts := newTestServer(t, false)
		ts.as(donorActor)

		rec := ts.do(t, &donorActor, http.MethodGet, "/api/admin/users", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandleVerify(t *testing.T) {
	ts := newTestServer(t, false)
	ts.as(adminActor)
	ts.service.EXPECT().Verify(gomock.Any(), adminActor, "vol-7", lifecycle.VerificationVerified, "documents checked").
		Return(lifecycle.User{ID: "vol-7", Role: lifecycle.RoleVolunteer, Verification: lifecycle.VerificationVerified}, nil)

	rec := ts.do(t, &adminActor, http.MethodPost, "/api/admin/verifications/vol-7",
		map[string]string{"decision": " Verified ", "notes": "documents checked"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicRoutes(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(t, nil, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = ts.do(t, nil, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, nil, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, nil, http.MethodGet, "/ws", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleWebsocket_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_server.NewMockService(ctrl)
	hub := mock_server.NewMockHub(ctrl)
	handler := New(service, Options{JWTSecret: testSecret, Hub: hub}).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	service.EXPECT().ResolveActor(gomock.Any(), "ngo-1", lifecycle.RoleNGO).
		Return(lifecycle.Actor{}, storage.ErrNotFound)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token="+token(t, ngoActor), nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: bad", lifecycle.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{lifecycle.ErrVerificationRequired, http.StatusForbidden, "verification_required"},
		{storage.ErrForbidden, http.StatusForbidden, "forbidden"},
		{fmt.Errorf("%w: request x", storage.ErrNotFound), http.StatusNotFound, "not_found"},
		{lifecycle.ErrAlreadyAccepted, http.StatusConflict, "conflict"},
		{lifecycle.ErrAlreadyAssigned, http.StatusConflict, "conflict"},
		{storage.ErrAlreadyRegistered, http.StatusConflict, "conflict"},
		{storage.ErrConcurrentUpdate, http.StatusConflict, "conflict"},
		{lifecycle.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition"},
		{lifecycle.ErrMalformedSnapshot, http.StatusInternalServerError, "internal"},
		{context.DeadlineExceeded, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}
