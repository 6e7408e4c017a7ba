package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	CreateMovie(ctx context.Context, m Movie) (InsertResult, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
	UpdateMovie(ctx context.Context, id string, updates map[string]any) (Movie, error)
}

// Repository is the movie storage port. FindByID returns ErrNotFound when
// no document has the given id.
type Repository interface {
	Find(ctx context.Context, limit int) ([]Movie, error)
	Insert(ctx context.Context, m Movie) (InsertResult, error)
	FindByID(ctx context.Context, id string) (Movie, error)
	Exists(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	UpdateByID(ctx context.Context, id string, updates map[string]any) (UpdateResult, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.Find(ctx, ListLimit)
}

func (uc *Usecase) CreateMovie(ctx context.Context, m Movie) (InsertResult, error) {
	if m == nil {
		m = Movie{}
	}
	return uc.r.Insert(ctx, m)
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.FindByID(ctx, id)
}

// DeleteMovie looks the movie up before deleting it. The two calls are not
// atomic: a concurrent delete in between still reports success.
func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	if _, err := uc.r.FindByID(ctx, id); err != nil {
		return err
	}
	_, err := uc.r.DeleteByID(ctx, id)
	return err
}

// UpdateMovie merges updates into the stored movie and returns the document
// as it is after the update, whether or not a field actually changed.
func (uc *Usecase) UpdateMovie(ctx context.Context, id string, updates map[string]any) (Movie, error) {
	if len(updates) == 0 {
		return nil, ErrInvalidUpdates
	}

	if _, err := uc.r.UpdateByID(ctx, id, updates); err != nil {
		return nil, err
	}
	return uc.r.FindByID(ctx, id)
}
