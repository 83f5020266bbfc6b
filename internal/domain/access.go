package domain

type ChannelKind string

const (
	ChannelKindText  ChannelKind = "text"
	ChannelKindVoice ChannelKind = "voice"
	ChannelKindForum ChannelKind = "forum"
	ChannelKindOther ChannelKind = "other"
)

type GuildChannel struct {
	ID   string
	Name string
	Kind ChannelKind
}

type TargetKind string

const (
	TargetMember TargetKind = "member"
	TargetRole   TargetKind = "role"
)

// OverwriteTarget identifica a quién aplica un permission overwrite.
type OverwriteTarget struct {
	ID   string
	Kind TargetKind
}

func Member(id string) OverwriteTarget { return OverwriteTarget{ID: id, Kind: TargetMember} }
func Role(id string) OverwriteTarget   { return OverwriteTarget{ID: id, Kind: TargetRole} }

// AccessReport: resultado de aplicar overwrites en varios canales.
type AccessReport struct {
	Applied int
	Skipped int
	Failed  []string // channel ids
}

func (r AccessReport) OK() bool { return len(r.Failed) == 0 }
