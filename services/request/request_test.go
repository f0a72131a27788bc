package request

import (
	"fmt"
	"testing"
	"time"

	"dogspot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestRepo keeps requests in a map, in insertion order for GetAll.
type fakeRequestRepo struct {
	requests map[string]*models.Request
	order    []string
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*models.Request{}}
}

func (f *fakeRequestRepo) GetByID(id string) (*models.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("request with id %s not found", id)
	}
	cp := *req
	return &cp, nil
}

func (f *fakeRequestRepo) GetAll() ([]models.Request, error) {
	out := make([]models.Request, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.requests[id])
	}
	return out, nil
}

func (f *fakeRequestRepo) GetByClientID(clientID string) ([]models.Request, error) {
	var out []models.Request
	for _, id := range f.order {
		if f.requests[id].ClientID == clientID {
			out = append(out, *f.requests[id])
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Create(request *models.Request) error {
	cp := *request
	f.requests[request.ID] = &cp
	f.order = append(f.order, request.ID)
	return nil
}

func (f *fakeRequestRepo) Update(request *models.Request) error {
	if _, ok := f.requests[request.ID]; !ok {
		return fmt.Errorf("request with id %s not found", request.ID)
	}
	cp := *request
	f.requests[request.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) Delete(id string) error {
	if _, ok := f.requests[id]; !ok {
		return fmt.Errorf("request with id %s not found", id)
	}
	delete(f.requests, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func testClient() models.Client {
	return models.Client{
		ID:           "client-1",
		Name:         "דני כהן",
		Phone:        "050-1234567",
		UserType:     "client",
		Neighborhood: "פלורנטין",
	}
}

func testInput() CreateRequestInput {
	return CreateRequestInput{
		ServiceType:  "walk_30",
		Date:         time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Time:         "18:00",
		DogName:      "מקס",
		DogBreed:     "לברדור",
		DogAge:       3,
		Neighborhood: "פלורנטין",
		OfferedPrice: 45,
		Flexible:     true,
	}
}

func TestCreateRequestEmbedsSnapshots(t *testing.T) {
	svc := &DefaultRequestService{Repo: newFakeRequestRepo()}

	req, err := svc.Create(testClient(), testInput())
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "client-1", req.ClientID)
	assert.Equal(t, "דני כהן", req.Client.Name)
	assert.Equal(t, "מקס", req.Dog.Name)
	assert.Equal(t, models.RequestStatusOpen, req.Status)
	assert.False(t, req.CreatedAt.IsZero())
}

func TestCreateRequestDerivesDogSizeFromAge(t *testing.T) {
	cases := []struct {
		age  int
		size string
	}{
		{1, "small"},
		{2, "small"},
		{3, "medium"},
		{7, "medium"},
		{8, "large"},
	}
	svc := &DefaultRequestService{Repo: newFakeRequestRepo()}
	for _, tc := range cases {
		in := testInput()
		in.DogAge = tc.age
		req, err := svc.Create(testClient(), in)
		require.NoError(t, err)
		assert.Equal(t, tc.size, req.Dog.Size, "age %d", tc.age)
		assert.Equal(t, "mixed", req.Dog.Temperament)
	}
}

func TestCreateRequestRejectsNegativePrice(t *testing.T) {
	svc := &DefaultRequestService{Repo: newFakeRequestRepo()}
	in := testInput()
	in.OfferedPrice = -5

	_, err := svc.Create(testClient(), in)
	assert.Error(t, err)
}

func TestDeleteRequestIsOwnerChecked(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := &DefaultRequestService{Repo: repo}
	req, err := svc.Create(testClient(), testInput())
	require.NoError(t, err)

	assert.Error(t, svc.Delete(req.ID, "someone-else"))
	_, err = repo.GetByID(req.ID)
	assert.NoError(t, err, "request must survive a foreign delete attempt")

	require.NoError(t, svc.Delete(req.ID, "client-1"))
	_, err = repo.GetByID(req.ID)
	assert.Error(t, err)
}

func TestCompleteRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := &DefaultRequestService{Repo: repo}
	req, err := svc.Create(testClient(), testInput())
	require.NoError(t, err)

	_, err = svc.Complete(req.ID, "someone-else")
	assert.Error(t, err)

	done, err := svc.Complete(req.ID, "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, done.Status)

	_, err = svc.Complete(req.ID, "client-1")
	assert.Error(t, err, "a completed request cannot be completed again")
}

func TestSyncClientProfileRewritesSnapshots(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := &DefaultRequestService{Repo: repo}
	req, err := svc.Create(testClient(), testInput())
	require.NoError(t, err)

	updated := testClient()
	updated.Name = "דניאל כהן"
	updated.Phone = "050-7654321"
	updated.Dogs = []models.Dog{{Name: "מקסי", Breed: "", Age: 4}}

	require.NoError(t, svc.SyncClientProfile(updated))

	got, err := repo.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, "דניאל כהן", got.Client.Name)
	assert.Equal(t, "050-7654321", got.Client.Phone)
	assert.Equal(t, "מקסי", got.Dog.Name)
	assert.Equal(t, 4, got.Dog.Age)
	assert.Equal(t, "לברדור", got.Dog.Breed, "empty profile fields leave the snapshot alone")
}

func TestSyncClientProfileOnlyTouchesOwnRequests(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := &DefaultRequestService{Repo: repo}

	mine, err := svc.Create(testClient(), testInput())
	require.NoError(t, err)
	other := testClient()
	other.ID = "client-2"
	other.Name = "שרה לוי"
	theirs, err := svc.Create(other, testInput())
	require.NoError(t, err)

	updated := testClient()
	updated.Name = "דניאל כהן"
	require.NoError(t, svc.SyncClientProfile(updated))

	got, _ := repo.GetByID(mine.ID)
	assert.Equal(t, "דניאל כהן", got.Client.Name)
	got, _ = repo.GetByID(theirs.ID)
	assert.Equal(t, "שרה לוי", got.Client.Name)
}
