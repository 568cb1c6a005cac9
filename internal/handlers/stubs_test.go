package handlers_test

import (
	"context"
	"sort"
	"time"

	"github.com/heritagehub/apiserver/internal/metrics"
	"github.com/heritagehub/apiserver/internal/store"
	"github.com/heritagehub/apiserver/types"
)

// Shared across all handler tests: prometheus collectors register
// globally, so New must run exactly once per test binary.
var testMetrics = metrics.New()

type stubUserRepo struct {
	users  map[int]types.User
	nextID int
}

func newStubUserRepo(seed ...types.User) *stubUserRepo {
	repo := &stubUserRepo{users: map[int]types.User{}, nextID: 1}
	for _, user := range seed {
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
		repo.users[user.ID] = user
	}
	return repo
}

func (r *stubUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *stubUserRepo) GetByIdentifier(ctx context.Context, identifier string) (types.User, error) {
	for _, user := range r.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if taken, _ := r.ExistsByUsernameOrEmail(ctx, user.Username, user.Email); taken {
		return types.User{}, store.ErrDuplicate
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]types.User, error) {
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	users := make([]types.User, 0, len(ids))
	for _, id := range ids {
		user := r.users[id]
		user.PasswordHash = ""
		users = append(users, user)
	}
	return users, nil
}

func (r *stubUserRepo) UpdateRole(ctx context.Context, id int, role string) error {
	user, ok := r.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.Role = role
	r.users[id] = user
	return nil
}

func (r *stubUserRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type pair struct{ a, b int }

type stubTourRepo struct {
	tours    []types.Tour
	bookings map[pair]types.Booking
	nextID   int
}

func newStubTourRepo() *stubTourRepo {
	return &stubTourRepo{bookings: map[pair]types.Booking{}, nextID: 1}
}

func (r *stubTourRepo) ListByMonument(ctx context.Context, monumentID int) ([]types.Tour, error) {
	tours := make([]types.Tour, 0)
	for _, tour := range r.tours {
		if tour.MonumentID == monumentID {
			tours = append(tours, tour)
		}
	}
	return tours, nil
}

func (r *stubTourRepo) Create(ctx context.Context, tour types.Tour) (types.Tour, error) {
	tour.ID = r.nextID
	r.nextID++
	r.tours = append(r.tours, tour)
	return tour, nil
}

func (r *stubTourRepo) CreateBooking(ctx context.Context, tourID, userID int) (types.Booking, error) {
	key := pair{tourID, userID}
	if _, ok := r.bookings[key]; ok {
		return types.Booking{}, store.ErrDuplicate
	}
	booking := types.Booking{
		ID:       len(r.bookings) + 1,
		TourID:   tourID,
		UserID:   userID,
		BookedAt: time.Now(),
	}
	r.bookings[key] = booking
	return booking, nil
}

func (r *stubTourRepo) ListAttendees(ctx context.Context, tourID int) ([]types.Attendee, error) {
	attendees := make([]types.Attendee, 0)
	for key, booking := range r.bookings {
		if key.a == tourID {
			attendees = append(attendees, types.Attendee{BookedAt: booking.BookedAt})
		}
	}
	return attendees, nil
}

func (r *stubTourRepo) ListUserBookings(ctx context.Context, userID int) ([]types.ItineraryEntry, error) {
	entries := make([]types.ItineraryEntry, 0)
	for key, booking := range r.bookings {
		if key.b == userID {
			entries = append(entries, types.ItineraryEntry{BookingID: booking.ID})
		}
	}
	return entries, nil
}

type stubFavoriteRepo struct {
	pairs map[pair]bool
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{pairs: map[pair]bool{}}
}

func (r *stubFavoriteRepo) Toggle(ctx context.Context, userID, monumentID int) (bool, error) {
	key := pair{userID, monumentID}
	if r.pairs[key] {
		delete(r.pairs, key)
		return false, nil
	}
	r.pairs[key] = true
	return true, nil
}

func (r *stubFavoriteRepo) ListByUser(ctx context.Context, userID int) ([]types.Monument, error) {
	monuments := make([]types.Monument, 0)
	for key := range r.pairs {
		if key.a == userID {
			monuments = append(monuments, types.Monument{ID: key.b})
		}
	}
	return monuments, nil
}

type stubReviewRepo struct {
	reviews []types.Review
}

func (r *stubReviewRepo) ListByMonument(ctx context.Context, monumentID int) ([]types.Review, error) {
	reviews := make([]types.Review, 0)
	for _, review := range r.reviews {
		if review.MonumentID == monumentID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *stubReviewRepo) Create(ctx context.Context, review types.Review) (types.Review, error) {
	review.ID = len(r.reviews) + 1
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, review)
	return review, nil
}

type stubTimelineRepo struct {
	events []types.TimelineEvent
}

func (r *stubTimelineRepo) ListByMonument(ctx context.Context, monumentID int) ([]types.TimelineEvent, error) {
	events := make([]types.TimelineEvent, 0)
	for _, event := range r.events {
		if event.MonumentID == monumentID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (r *stubTimelineRepo) Create(ctx context.Context, event types.TimelineEvent) (types.TimelineEvent, error) {
	event.ID = len(r.events) + 1
	r.events = append(r.events, event)
	return event, nil
}

type stubArticleRepo struct {
	articles []types.Article
}

func (r *stubArticleRepo) List(ctx context.Context) ([]types.Article, error) {
	return append([]types.Article(nil), r.articles...), nil
}

func (r *stubArticleRepo) Create(ctx context.Context, article types.Article) (types.Article, error) {
	article.ID = len(r.articles) + 1
	article.CreatedAt = time.Now()
	r.articles = append(r.articles, article)
	return article, nil
}

type stubMonumentRepo struct {
	monuments map[int]types.Monument
	nextID    int
}

func newStubMonumentRepo(seed ...types.Monument) *stubMonumentRepo {
	repo := &stubMonumentRepo{monuments: map[int]types.Monument{}, nextID: 1}
	for _, monument := range seed {
		if monument.ID >= repo.nextID {
			repo.nextID = monument.ID + 1
		}
		repo.monuments[monument.ID] = monument
	}
	return repo
}

func (r *stubMonumentRepo) List(ctx context.Context) ([]types.Monument, error) {
	monuments := make([]types.Monument, 0, len(r.monuments))
	for _, monument := range r.monuments {
		monuments = append(monuments, monument)
	}
	return monuments, nil
}

func (r *stubMonumentRepo) Get(ctx context.Context, id int) (types.Monument, error) {
	monument, ok := r.monuments[id]
	if !ok {
		return types.Monument{}, store.ErrNotFound
	}
	// Matches the repository contract: gallery is never nil.
	if monument.Gallery == nil {
		monument.Gallery = make([]string, 0)
	}
	return monument, nil
}

func (r *stubMonumentRepo) Create(ctx context.Context, monument types.Monument) (types.Monument, error) {
	monument.ID = r.nextID
	r.nextID++
	r.monuments[monument.ID] = monument
	return monument, nil
}

func (r *stubMonumentRepo) Update(ctx context.Context, monument types.Monument) (types.Monument, error) {
	if _, ok := r.monuments[monument.ID]; !ok {
		return types.Monument{}, store.ErrNotFound
	}
	r.monuments[monument.ID] = monument
	return monument, nil
}

func (r *stubMonumentRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.monuments[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.monuments, id)
	return nil
}
