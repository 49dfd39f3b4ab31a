package entity

type SurfaceKind int

const (
	SurfaceClosed SurfaceKind = iota
	SurfaceDetail
	SurfaceApproval
	SurfaceCreating
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceDetail:
		return "detail"
	case SurfaceApproval:
		return "approval"
	case SurfaceCreating:
		return "creating"
	}
	return "closed"
}

// Surface is the one modal the dashboard shows at a time.
// Post is set for Detail and Approval; Action only for Approval.
type Surface struct {
	Kind   SurfaceKind
	Post   Post
	Action Action
}

func ClosedSurface() Surface { return Surface{Kind: SurfaceClosed} }

func DetailSurface(p Post) Surface { return Surface{Kind: SurfaceDetail, Post: p} }

func ApprovalSurface(p Post, a Action) Surface {
	return Surface{Kind: SurfaceApproval, Post: p, Action: a}
}

func CreatingSurface() Surface { return Surface{Kind: SurfaceCreating} }

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingConfirmation
	PhaseInFlight
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingConfirmation:
		return "awaiting_confirmation"
	case PhaseInFlight:
		return "in_flight"
	}
	return "idle"
}

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is the user-visible outcome of the last network-backed operation.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	PostID  string      `json:"post_id,omitempty"`
	Action  Action      `json:"action,omitempty"`
}
