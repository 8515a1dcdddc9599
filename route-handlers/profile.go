package routehandlers

import (
	"encoding/json"
	"net/http"

	"github.com/bookmakerhq/bookmaker/auth"
	"github.com/bookmakerhq/bookmaker/datastore"
	"github.com/bookmakerhq/bookmaker/webutil"
)

type ProfileHandler struct {
	Repo *datastore.ProfileRepository
}

func NewProfileHandler(repo *datastore.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

type profileRequest struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	profile, err := h.Repo.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile)
	return nil
}

func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	var req profileRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	profile, err := h.Repo.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		return err
	}

	profile.Username = req.Username
	profile.FullName = req.FullName
	profile.AvatarURL = req.AvatarURL
	profile.Bio = req.Bio

	if err := h.Repo.UpdateProfile(r.Context(), profile); err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile)
	return nil
}
