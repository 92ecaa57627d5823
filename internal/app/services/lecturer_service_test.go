package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
)

type stubLecturerStore struct {
	lecturers map[int64]*models.Lecturer
	nextID    int64
	deleted   []int64
}

func (s *stubLecturerStore) Create(_ context.Context, lecturer *models.Lecturer) error {
	s.nextID++
	lecturer.ID = s.nextID
	lecturer.Identity.ID = s.nextID + 100
	lecturer.IdentityID = lecturer.Identity.ID
	s.lecturers[lecturer.ID] = lecturer
	return nil
}

func (s *stubLecturerStore) GetByID(_ context.Context, id int64) (*models.Lecturer, error) {
	lecturer, ok := s.lecturers[id]
	if !ok {
		return nil, apperrors.ErrLecturerNotFound
	}
	return lecturer, nil
}

func (s *stubLecturerStore) GetAll(_ context.Context) ([]*models.Lecturer, error) {
	var lecturers []*models.Lecturer
	for _, lecturer := range s.lecturers {
		lecturers = append(lecturers, lecturer)
	}
	return lecturers, nil
}

func (s *stubLecturerStore) Update(_ context.Context, lecturer *models.Lecturer) error {
	if _, ok := s.lecturers[lecturer.ID]; !ok {
		return apperrors.ErrLecturerNotFound
	}
	s.lecturers[lecturer.ID] = lecturer
	return nil
}

func (s *stubLecturerStore) DeleteCascade(_ context.Context, id int64) error {
	if _, ok := s.lecturers[id]; !ok {
		return apperrors.ErrLecturerNotFound
	}
	delete(s.lecturers, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubUsernameIndex struct {
	taken map[string]bool
}

func (s *stubUsernameIndex) UsernameExists(_ context.Context, username string) (bool, error) {
	return s.taken[username], nil
}

func newLecturerTestService() (*LecturerService, *stubLecturerStore, *stubUsernameIndex) {
	store := &stubLecturerStore{lecturers: map[int64]*models.Lecturer{}}
	index := &stubUsernameIndex{taken: map[string]bool{}}
	return NewLecturerService(store, index, zerolog.Nop()), store, index
}

func TestDeriveUsername(t *testing.T) {
	dob := time.Date(1999, 5, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "janedoe19990502", DeriveUsername("Jane", "Doe", dob))
	assert.Equal(t, "marycurie19990502", DeriveUsername(" Mary ", "Curie", dob))
	assert.Equal(t, "annavonneumann19990502", DeriveUsername("Anna", "von Neumann", dob))
}

func TestCreateLecturerDerivesCredentials(t *testing.T) {
	svc, store, _ := newLecturerTestService()

	resp, err := svc.Create(context.Background(), &dto.CreateProfileRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@campus.edu",
		DOB:       "1999-05-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "janedoe19990502", resp.Username)
	assert.Equal(t, "1999-05-02", resp.DOB)
	assert.Equal(t, string(models.RoleLecturer), resp.Role)

	created := store.lecturers[resp.ID]
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Identity.Password), []byte("1999-05-02")))
}

func TestCreateLecturerUsernameCollision(t *testing.T) {
	svc, store, index := newLecturerTestService()
	index.taken["janedoe19990502"] = true

	_, err := svc.Create(context.Background(), &dto.CreateProfileRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "other.jane@campus.edu",
		DOB:       "1999-05-02",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
	assert.Empty(t, store.lecturers)
}

func TestCreateLecturerValidation(t *testing.T) {
	svc, _, _ := newLecturerTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateProfileRequest
	}{
		{"short first name", dto.CreateProfileRequest{FirstName: "J", LastName: "Doe", Email: "j@campus.edu", DOB: "1999-05-02"}},
		{"bad email", dto.CreateProfileRequest{FirstName: "Jane", LastName: "Doe", Email: "not-an-email", DOB: "1999-05-02"}},
		{"bad dob", dto.CreateProfileRequest{FirstName: "Jane", LastName: "Doe", Email: "j.d@campus.edu", DOB: "02/05/1999"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestUpdateLecturerKeepsUsername(t *testing.T) {
	svc, _, _ := newLecturerTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateProfileRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@campus.edu",
		DOB:       "1999-05-02",
	})
	require.NoError(t, err)

	newLast := "Smith"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateProfileRequest{LastName: &newLast})
	require.NoError(t, err)

	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "janedoe19990502", updated.Username)
}

func TestDeleteLecturerCascades(t *testing.T) {
	svc, store, _ := newLecturerTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateProfileRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@campus.edu",
		DOB:       "1999-05-02",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, []int64{created.ID}, store.deleted)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrLecturerNotFound)
}
