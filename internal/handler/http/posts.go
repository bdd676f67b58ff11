package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	var in models.PostIn
	if err := h.decodeAndValidate(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), user.ID, in.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	sorting := models.PostSorting(r.URL.Query().Get("sorting"))
	if err := h.validator.Validate(r.Context(), sorting); err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), sorting)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if posts == nil {
		posts = []models.PostWithLikes{}
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPostWithComments(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPostWithComments(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.PostService.ListComments(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	var in models.CommentIn
	if err := h.decodeAndValidate(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.PostService.CreateComment(r.Context(), user.ID, in.PostID, in.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	var in models.LikeIn
	if err := h.decodeAndValidate(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	like, err := h.services.PostService.LikePost(r.Context(), user.ID, in.PostID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, like, http.StatusCreated)
}
