package handlers

import (
	"net/http"

	"github.com/gsf/tournament-tracker/services"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(ms services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: ms}
}

// ListHandler handles GET /api/members
func (h *MemberHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, members); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler handles GET /api/members/{memberID}
func (h *MemberHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "memberID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	member, err := h.memberService.GetMemberByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, member); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RankingsHandler handles GET /api/rankings?system=<code>
func (h *MemberHandler) RankingsHandler(w http.ResponseWriter, r *http.Request) {
	system := r.URL.Query().Get("system")

	rankings, err := h.memberService.GetRankings(r.Context(), system)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, rankings); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// HistoryHandler handles GET /api/history/{memberID}
func (h *MemberHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "memberID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	games, err := h.memberService.GetHistory(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, games); err != nil {
		serverErrorResponse(w, r, err)
	}
}
