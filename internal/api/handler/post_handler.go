package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapgram/api/internal/core/domain"
	"github.com/snapgram/api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
	files   ports.FileStore
}

func NewPostHandler(service ports.PostService, files ports.FileStore) *PostHandler {
	return &PostHandler{service: service, files: files}
}

// Create handles POST /posts (multipart form).
//
// The author id comes from the userId form field; when a valid bearer
// token accompanies the request the token's user id wins. The upload, if
// any, is written to disk before the post is persisted, so a failed insert
// can leave an orphaned file behind.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        userId   formData  string  true   "Author user id"
// @Param        caption  formData  string  false  "Caption"
// @Param        image    formData  file    false  "Image file"
// @Success      201      {object}  postResponse
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if userID, ok := ctxUserID(c); ok {
		req.UserID = userID
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error creating post"})
		}
		defer src.Close()

		imageURL, err = h.files.Save(c.Request().Context(), fh.Filename, src)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error creating post"})
		}
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		AuthorID: req.UserID,
		Caption:  req.Caption,
		ImageURL: imageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error creating post"})
	}

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   feedPostResponse
// @Failure      500  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error fetching posts"})
	}

	return c.JSON(http.StatusOK, toFeedResponse(posts))
}
