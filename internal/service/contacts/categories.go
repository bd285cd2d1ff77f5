package contacts

import (
	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/enum/field_type_enum"
)

// 带标签类别的通用投影：contact_id, 主值, 系统标签 ID, 自定义标签
var withLabelColumns = []string{colContactID, colData1, colData2, colData3}

var phones = satellite[respond.PhoneNumber]{
	field:    field_type_enum.PHONE_NUMBERS,
	mimeType: mimePhone,
	columns:  []string{colContactID, colData1, colData2, colData3, "is_primary"},
	build: func(p *source.Projection, labels *LabelResolver) (respond.PhoneNumber, bool) {
		labelID := p.Int(2)
		return respond.PhoneNumber{
			Number:    p.String(1),
			Label:     labels.Resolve(LabelPhone, labelID, p.String(3)),
			LabelID:   labelID,
			IsPrimary: p.Int(4) != 0,
		}, true
	},
}

var addresses = satellite[respond.Address]{
	field:    field_type_enum.ADDRESS,
	mimeType: mimeAddress,
	columns:  withLabelColumns,
	build: func(p *source.Projection, labels *LabelResolver) (respond.Address, bool) {
		labelID := p.Int(2)
		return respond.Address{
			Address: p.String(1),
			Label:   labels.Resolve(LabelAddress, labelID, p.String(3)),
			LabelID: labelID,
		}, true
	},
}

var emails = satellite[respond.Email]{
	field:    field_type_enum.EMAILS,
	mimeType: mimeEmail,
	columns:  withLabelColumns,
	build: func(p *source.Projection, labels *LabelResolver) (respond.Email, bool) {
		labelID := p.Int(2)
		return respond.Email{
			Address: p.String(1),
			Label:   labels.Resolve(LabelEmail, labelID, p.String(3)),
			LabelID: labelID,
		}, true
	},
}

var specialDates = satellite[respond.SpecialDate]{
	field:    field_type_enum.SPECIAL_DATES,
	mimeType: mimeEvent,
	columns:  withLabelColumns,
	build: func(p *source.Projection, labels *LabelResolver) (respond.SpecialDate, bool) {
		labelID := p.Int(2)
		return respond.SpecialDate{
			Date:    p.String(1),
			Label:   labels.Resolve(LabelEvent, labelID, p.String(3)),
			LabelID: labelID,
		}, true
	},
}

var relations = satellite[respond.Relation]{
	field:    field_type_enum.RELATIONS,
	mimeType: mimeRelation,
	columns:  withLabelColumns,
	build: func(p *source.Projection, labels *LabelResolver) (respond.Relation, bool) {
		labelID := p.Int(2)
		return respond.Relation{
			Name:    p.String(1),
			Label:   labels.Resolve(LabelRelation, labelID, p.String(3)),
			LabelID: labelID,
		}, true
	},
}

// IM 的协议存放在 data5，自定义协议名在 data6
var imAddresses = satellite[respond.IMAddress]{
	field:    field_type_enum.IM_ADDRESSES,
	mimeType: mimeIM,
	columns:  []string{colContactID, colData1, "data5", "data6"},
	build: func(p *source.Projection, labels *LabelResolver) (respond.IMAddress, bool) {
		protocolID := p.Int(2)
		return respond.IMAddress{
			Address:    p.String(1),
			Protocol:   labels.Resolve(LabelIM, protocolID, p.String(3)),
			ProtocolID: protocolID,
		}, true
	},
}

var websites = satellite[string]{
	field:    field_type_enum.WEBSITES,
	mimeType: mimeWebsite,
	columns:  []string{colContactID, colData1},
	build: func(p *source.Projection, _ *LabelResolver) (string, bool) {
		return p.String(1), true
	},
}

// 备注、昵称、SIP 都只读 data1，NULL 值不计入
func textSatellite(field field_type_enum.FieldType, mimeType string) satellite[string] {
	return satellite[string]{
		field:    field,
		mimeType: mimeType,
		columns:  []string{colContactID, colData1},
		build: func(p *source.Projection, _ *LabelResolver) (string, bool) {
			return p.NullString(1)
		},
	}
}

var (
	notes     = textSatellite(field_type_enum.NOTES, mimeNote)
	nicknames = textSatellite(field_type_enum.NICKNAME, mimeNickname)
	sips      = textSatellite(field_type_enum.SIP, mimeSip)
)

// 公司名 data1，职位 data4，部门 data5
var organizations = satellite[*respond.Organization]{
	field:    field_type_enum.ORGANIZATION,
	mimeType: mimeOrganization,
	columns:  []string{colContactID, colData1, "data4", "data5"},
	build: func(p *source.Projection, _ *LabelResolver) (*respond.Organization, bool) {
		return &respond.Organization{
			Name:       p.String(1),
			Title:      p.String(2),
			Department: p.String(3),
		}, true
	},
}

// 结构化姓名按 Android StructuredName 的列布局读取 data1~data9
var names = satellite[*respond.NameData]{
	field:    field_type_enum.NAME_DATA,
	mimeType: mimeName,
	columns: []string{colContactID,
		colData1, colData2, colData3, "data4", "data5", "data6", "data7", "data8", "data9"},
	build: func(p *source.Projection, _ *LabelResolver) (*respond.NameData, bool) {
		return &respond.NameData{
			FullName:       p.String(1),
			FirstName:      p.String(2),
			Surname:        p.String(3),
			NamePrefix:     p.String(4),
			MiddleName:     p.String(5),
			NameSuffix:     p.String(6),
			PhoneticFirst:  p.String(7),
			PhoneticMiddle: p.String(8),
			PhoneticLast:   p.String(9),
		}, true
	},
}

// 分组成员关系，data1 为分组 ID
var memberships = satellite[int64]{
	field:    field_type_enum.GROUPS,
	mimeType: mimeGroupMembership,
	columns:  []string{colContactID, colData1},
	build: func(p *source.Projection, _ *LabelResolver) (int64, bool) {
		return p.Long(1), true
	},
}
