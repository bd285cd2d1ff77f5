package contacts

// LabelCategory 标签所属类别，不同类别使用各自的标签表
type LabelCategory int

const (
	LabelPhone LabelCategory = iota
	LabelEmail
	LabelAddress
	LabelEvent
	LabelRelation
	LabelIM
)

// LabelLookup 将系统标签 ID 映射为显示名称，未知 ID 返回 false
type LabelLookup func(category LabelCategory, labelID int) (string, bool)

// LabelResolver 标签解析器
type LabelResolver struct {
	lookup LabelLookup
}

// NewLabelResolver 创建标签解析器，lookup 为 nil 时使用 DefaultLabelLookup
func NewLabelResolver(lookup LabelLookup) *LabelResolver {
	if lookup == nil {
		lookup = DefaultLabelLookup
	}
	return &LabelResolver{lookup: lookup}
}

// Resolve 自定义标签非空时原样返回，否则按类别标签表解析系统标签 ID
// 未知 ID 返回类别的兜底名称
func (r *LabelResolver) Resolve(category LabelCategory, labelID int, customLabel string) string {
	if customLabel != "" {
		return customLabel
	}
	if label, ok := r.lookup(category, labelID); ok {
		return label
	}
	return fallbackLabel(category)
}

func fallbackLabel(category LabelCategory) string {
	switch category {
	case LabelRelation, LabelIM:
		return "Custom"
	default:
		return "Other"
	}
}

// DefaultLabelLookup 内置的 Android 联系人标签表
func DefaultLabelLookup(category LabelCategory, labelID int) (string, bool) {
	table, ok := labelTables[category]
	if !ok {
		return "", false
	}
	label, ok := table[labelID]
	return label, ok
}

var labelTables = map[LabelCategory]map[int]string{
	LabelPhone: {
		1:  "Home",
		2:  "Mobile",
		3:  "Work",
		4:  "Work Fax",
		5:  "Home Fax",
		6:  "Pager",
		7:  "Other",
		8:  "Callback",
		9:  "Car",
		10: "Company Main",
		11: "ISDN",
		12: "Main",
		13: "Other Fax",
		14: "Radio",
		15: "Telex",
		16: "TTY TDD",
		17: "Work Mobile",
		18: "Work Pager",
		19: "Assistant",
		20: "MMS",
	},
	LabelEmail: {
		1: "Home",
		2: "Work",
		3: "Other",
		4: "Mobile",
	},
	LabelAddress: {
		1: "Home",
		2: "Work",
		3: "Other",
	},
	LabelEvent: {
		1: "Anniversary",
		2: "Other",
		3: "Birthday",
	},
	LabelRelation: {
		1:  "Assistant",
		2:  "Brother",
		3:  "Child",
		4:  "Domestic Partner",
		5:  "Father",
		6:  "Friend",
		7:  "Manager",
		8:  "Mother",
		9:  "Parent",
		10: "Partner",
		11: "Referred By",
		12: "Relative",
		13: "Sister",
		14: "Spouse",
	},
	LabelIM: {
		0: "AIM",
		1: "Windows Live",
		2: "Yahoo",
		3: "Skype",
		4: "QQ",
		5: "Hangouts",
		6: "ICQ",
		7: "Jabber",
		8: "NetMeeting",
	},
}
