package contacts

// data 表中各属性类别的 mimetype 取值
const (
	mimePhone           = "vnd.android.cursor.item/phone_v2"
	mimeAddress         = "vnd.android.cursor.item/postal-address_v2"
	mimeEmail           = "vnd.android.cursor.item/email_v2"
	mimeEvent           = "vnd.android.cursor.item/contact_event"
	mimeRelation        = "vnd.android.cursor.item/relation"
	mimeIM              = "vnd.android.cursor.item/im"
	mimeWebsite         = "vnd.android.cursor.item/website"
	mimeNote            = "vnd.android.cursor.item/note"
	mimeNickname        = "vnd.android.cursor.item/nickname"
	mimeSip             = "vnd.android.cursor.item/sip_address"
	mimeOrganization    = "vnd.android.cursor.item/organization"
	mimeName            = "vnd.android.cursor.item/name"
	mimeGroupMembership = "vnd.android.cursor.item/group_membership"
)

// 表名
const (
	tableContacts        = "contacts"
	tableData            = "data"
	tableRawContacts     = "raw_contacts"
	tableGroups          = "groups"
	tableDeletedContacts = "deleted_contacts"
)

// 通用列名
const (
	colContactID        = "contact_id"
	colData1            = "data1"
	colData2            = "data2"
	colData3            = "data3"
	colDeletedTimestamp = "contact_deleted_timestamp"
)
