package repositories

import (
	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"gorm.io/gorm"
)

// PostListOptions narrows a post listing. Deleted and hidden rows are always
// excluded; the options only pick categories, author and page.
type PostListOptions struct {
	Category          models.PostCategory   // zero value lists every category
	ExcludeCategories []models.PostCategory // general feed exclusions
	AuthorID          uint                  // non-zero restricts to one author ("mine")
	Page              int
	Limit             int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	ListPosts(opts PostListOptions) ([]models.Post, int64, error)
	ListForRanking(exclude []models.PostCategory) ([]models.Post, error)
	UpdatePost(post *models.Post) error
	SoftDeletePost(id uint) error
	HidePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its author, regardless of flags.
// Callers decide whether a deleted or hidden row may be served.
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) visible() *gorm.DB {
	return r.db.Where("is_deleted = ? AND is_hidden = ?", false, false)
}

// ListPosts retrieves visible posts newest-first with the total row count
// for pagination.
func (r *PostgresPostRepository) ListPosts(opts PostListOptions) ([]models.Post, int64, error) {
	query := r.visible().Model(&models.Post{})

	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	} else if len(opts.ExcludeCategories) > 0 {
		query = query.Where("category NOT IN ?", opts.ExcludeCategories)
	}
	if opts.AuthorID != 0 {
		query = query.Where("author_id = ?", opts.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 20
	}

	var posts []models.Post
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListForRanking retrieves every visible post outside the excluded
// categories. Scoring and ordering happen in memory, so no paging here.
func (r *PostgresPostRepository) ListForRanking(exclude []models.PostCategory) ([]models.Post, error) {
	query := r.visible()
	if len(exclude) > 0 {
		query = query.Where("category NOT IN ?", exclude)
	}
	var posts []models.Post
	if err := query.Preload("Author").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost saves an edited post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// SoftDeletePost flags a post deleted, keeping the row for audit and report
// linkage.
func (r *PostgresPostRepository) SoftDeletePost(id uint) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HidePost flags a post hidden by moderation.
func (r *PostgresPostRepository) HidePost(id uint) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).Update("is_hidden", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
