// Package badge maps the string enums stored on profiles, events and
// communities to the descriptors clients render them with.
package badge

// Descriptor is what a client needs to draw a badge or icon.
type Descriptor struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type Department string

const (
	DeptCivil Department = "civil"
	DeptComp  Department = "comp"
	DeptMech  Department = "mech"
	DeptENTC  Department = "entc"
	DeptMBA   Department = "mba"
)

// Departments lists every known department in sign-up order.
var Departments = []Department{DeptCivil, DeptComp, DeptMech, DeptENTC, DeptMBA}

func (d Department) Badge() Descriptor {
	switch d {
	case DeptCivil:
		return Descriptor{Label: "Civil Engineering", Color: "badge-civil"}
	case DeptComp:
		return Descriptor{Label: "Computer Engineering", Color: "badge-comp"}
	case DeptMech:
		return Descriptor{Label: "Mechanical Engineering", Color: "badge-mech"}
	case DeptENTC:
		return Descriptor{Label: "ENTC", Color: "primary"}
	case DeptMBA:
		return Descriptor{Label: "MBA", Color: "badge-mba"}
	}
	return Descriptor{Label: string(d), Color: "muted"}
}

type EventType string

const (
	EventOfficial EventType = "official"
	EventSports   EventType = "sports"
	EventAcademic EventType = "academic"
	EventCultural EventType = "cultural"
	EventOther    EventType = "other"
)

func (t EventType) Badge() Descriptor {
	switch t {
	case EventOfficial:
		return Descriptor{Label: "Official", Color: "event-official"}
	case EventSports:
		return Descriptor{Label: "Sports", Color: "event-sports"}
	case EventAcademic:
		return Descriptor{Label: "Academic", Color: "event-academic"}
	case EventCultural:
		return Descriptor{Label: "Cultural", Color: "event-cultural"}
	case EventOther:
		return Descriptor{Label: "Other", Color: "muted-foreground"}
	}
	return EventOther.Badge()
}

type CommunityIcon string

const (
	IconCivil    CommunityIcon = "civil"
	IconTech     CommunityIcon = "tech"
	IconSports   CommunityIcon = "sports"
	IconCultural CommunityIcon = "cultural"
)

// Badge falls back to the building icon for empty or unknown names.
func (i CommunityIcon) Badge() Descriptor {
	switch i {
	case IconCivil:
		return Descriptor{Label: "Civil", Icon: "building-2"}
	case IconTech:
		return Descriptor{Label: "Tech", Icon: "code"}
	case IconSports:
		return Descriptor{Label: "Sports", Icon: "trophy"}
	case IconCultural:
		return Descriptor{Label: "Cultural", Icon: "palette"}
	}
	return Descriptor{Label: "Community", Icon: "building-2"}
}

type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

func (r Role) Badge() Descriptor {
	switch r {
	case RoleStudent:
		return Descriptor{Label: "student", Color: "secondary"}
	case RoleProfessor:
		return Descriptor{Label: "professor", Color: "primary"}
	case RoleAdmin:
		return Descriptor{Label: "admin", Color: "destructive"}
	}
	return Descriptor{Label: string(r), Color: "muted"}
}
