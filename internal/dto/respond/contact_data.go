package respond

// ContactData 聚合后的联系人记录，每个联系人一条
// 列表/指针字段为 nil 表示该类别未启用或没有数据；字段要么完整填充，要么保持 nil
// 使用位置:
//   - internal/service/contacts: Aggregator.FetchAll
//   - internal/handler/contact_handler.go: GetContacts
//   - internal/infrastructure/mq/publisher.go: PublishSnapshot
type ContactData struct {
	ID                   int64  `json:"id"`
	LookupKey            string `json:"lookup_key"`
	LastModificationDate int64  `json:"last_modification_date"`
	Favorite             bool   `json:"favorite"`
	CompositeName        string `json:"composite_name"`
	PhotoURI             string `json:"photo_uri"`
	AccountName          string `json:"account_name,omitempty"`
	AccountType          string `json:"account_type,omitempty"`

	PhoneList        []PhoneNumber `json:"phone_list,omitempty"`
	AddressesList    []Address     `json:"addresses_list,omitempty"`
	EmailList        []Email       `json:"email_list,omitempty"`
	WebsitesList     []string      `json:"websites_list,omitempty"`
	SpecialDatesList []SpecialDate `json:"special_dates_list,omitempty"`
	RelationsList    []Relation    `json:"relations_list,omitempty"`
	ImAddressesList  []IMAddress   `json:"im_addresses_list,omitempty"`
	GroupList        []*Group      `json:"group_list,omitempty"`

	Note         *string       `json:"note,omitempty"`
	NickName     *string       `json:"nick_name,omitempty"`
	SipAddress   *string       `json:"sip_address,omitempty"`
	Organization *Organization `json:"organization,omitempty"`
	NameData     *NameData     `json:"name_data,omitempty"`
}

// PhoneNumber 电话号码
type PhoneNumber struct {
	Number    string `json:"number"`
	Label     string `json:"label"`
	LabelID   int    `json:"label_id"`
	IsPrimary bool   `json:"is_primary"`
}

// Address 邮寄地址
type Address struct {
	Address string `json:"address"`
	Label   string `json:"label"`
	LabelID int    `json:"label_id"`
}

// Email 邮箱
type Email struct {
	Address string `json:"address"`
	Label   string `json:"label"`
	LabelID int    `json:"label_id"`
}

// SpecialDate 纪念日、生日等
type SpecialDate struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	LabelID int    `json:"label_id"`
}

// Relation 关系人
type Relation struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	LabelID int    `json:"label_id"`
}

// IMAddress 即时通讯账号，Protocol 为解析后的协议名称
type IMAddress struct {
	Address    string `json:"address"`
	Protocol   string `json:"protocol"`
	ProtocolID int    `json:"protocol_id"`
}

type Organization struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// NameData 结构化姓名
type NameData struct {
	FullName       string `json:"full_name"`
	FirstName      string `json:"first_name"`
	Surname        string `json:"surname"`
	NamePrefix     string `json:"name_prefix"`
	MiddleName     string `json:"middle_name"`
	NameSuffix     string `json:"name_suffix"`
	PhoneticFirst  string `json:"phonetic_first"`
	PhoneticMiddle string `json:"phonetic_middle"`
	PhoneticLast   string `json:"phonetic_last"`
}

// Group 联系人分组，同一分组在多条记录间共享同一个指针
type Group struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
