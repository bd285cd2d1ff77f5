// Package field_type_enum 定义聚合时可启用的联系人属性类别
package field_type_enum

import (
	"strings"

	"kama_contact_sync/pkg/errorx"
)

// FieldType 联系人属性类别
type FieldType string

const (
	PHONE_NUMBERS FieldType = "PHONE_NUMBERS" // 电话号码（列表）
	ADDRESS       FieldType = "ADDRESS"       // 邮寄地址（列表）
	EMAILS        FieldType = "EMAILS"        // 邮箱（列表）
	WEBSITES      FieldType = "WEBSITES"      // 网站（列表）
	SPECIAL_DATES FieldType = "SPECIAL_DATES" // 生日、纪念日等（列表）
	RELATIONS     FieldType = "RELATIONS"     // 亲属关系（列表）
	IM_ADDRESSES  FieldType = "IM_ADDRESSES"  // 即时通讯账号（列表）
	NOTES         FieldType = "NOTES"         // 备注（单值）
	NICKNAME      FieldType = "NICKNAME"      // 昵称（单值）
	SIP           FieldType = "SIP"           // SIP 地址（单值）
	ORGANIZATION  FieldType = "ORGANIZATION"  // 公司信息（单值）
	NAME_DATA     FieldType = "NAME_DATA"     // 结构化姓名（单值）
	GROUPS        FieldType = "GROUPS"        // 所属分组（列表）
)

// All 全部属性类别，顺序即查询顺序
var All = []FieldType{
	PHONE_NUMBERS,
	ADDRESS,
	EMAILS,
	WEBSITES,
	SPECIAL_DATES,
	RELATIONS,
	IM_ADDRESSES,
	NOTES,
	NICKNAME,
	SIP,
	ORGANIZATION,
	NAME_DATA,
	GROUPS,
}

// Valid 判断是否为已知类别
func (f FieldType) Valid() bool {
	for _, known := range All {
		if f == known {
			return true
		}
	}
	return false
}

// Parse 解析类别名称，忽略大小写与首尾空白
func Parse(name string) (FieldType, error) {
	f := FieldType(strings.ToUpper(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", errorx.Newf(errorx.CodeInvalidParam, "未知的属性类别 %q", name)
	}
	return f, nil
}

// ParseList 批量解析，支持逗号分隔的写法（如 "PHONE_NUMBERS,EMAILS"）
func ParseList(names []string) ([]FieldType, error) {
	fields := make([]FieldType, 0, len(names))
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := Parse(part)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	}
	return fields, nil
}
