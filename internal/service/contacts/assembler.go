package contacts

import (
	"context"

	"go.uber.org/zap"

	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/dto/respond"
)

var primaryColumns = []string{
	"_id",
	"contact_last_updated_timestamp",
	"photo_uri",
	"lookup",
	"display_name",
	"starred",
}

// primaryRow contacts 表中的一行
type primaryRow struct {
	id          int64
	updatedAt   int64
	photoURI    string
	lookupKey   string
	displayName string
	starred     bool
}

// scanPrimary 扫描主表并为每行组装一条记录
// 返回有序结果和 ID 索引；投影无法解析时返回空列表和错误，不返回部分结果
func (a *Aggregator) scanPrimary(ctx context.Context, opts FetchOptions, idx *satelliteIndexes) ([]*respond.ContactData, map[int64]*respond.ContactData, error) {
	rows, err := a.src.Scan(ctx, source.Query{
		Table:         tableContacts,
		Projection:    primaryColumns,
		Selection:     opts.Selection,
		SelectionArgs: opts.SelectionArgs,
		OrderBy:       opts.SortOrder,
	})
	if err != nil {
		return []*respond.ContactData{}, nil, err
	}
	defer rows.Close()

	p, err := source.Resolve(tableContacts, rows, primaryColumns...)
	if err != nil {
		return []*respond.ContactData{}, nil, err
	}

	result := []*respond.ContactData{}
	byID := make(map[int64]*respond.ContactData)
	for p.Next() {
		row := primaryRow{
			id:          p.Long(0),
			updatedAt:   p.Long(1),
			photoURI:    p.String(2),
			lookupKey:   p.String(3),
			displayName: p.String(4),
			starred:     p.Int(5) == 1,
		}
		if _, dup := byID[row.id]; dup {
			zap.L().Warn("duplicate contact id in primary scan, skipped", zap.Int64("id", row.id))
			continue
		}
		record := assemble(a.newRecord(), row, idx)
		result = append(result, record)
		byID[row.id] = record
	}
	if err := p.Err(); err != nil {
		return []*respond.ContactData{}, nil, err
	}
	return result, byID, nil
}

// newRecord 通过工厂创建记录，失败时退化为零值记录
func (a *Aggregator) newRecord() *respond.ContactData {
	record, err := a.factory()
	if err != nil || record == nil {
		zap.L().Warn("record factory failed, using default record", zap.Error(err))
		return &respond.ContactData{}
	}
	return record
}

// assemble 一次性填充记录的全部字段，账号信息由关联扫描补充
func assemble(record *respond.ContactData, row primaryRow, idx *satelliteIndexes) *respond.ContactData {
	record.ID = row.id
	record.LookupKey = row.lookupKey
	record.LastModificationDate = row.updatedAt
	record.Favorite = row.starred
	record.CompositeName = row.displayName
	record.PhotoURI = row.photoURI

	record.PhoneList = idx.phones[row.id]
	record.AddressesList = idx.addresses[row.id]
	record.EmailList = idx.emails[row.id]
	record.WebsitesList = idx.websites[row.id]
	record.SpecialDatesList = idx.specialDates[row.id]
	record.RelationsList = idx.relations[row.id]
	record.ImAddressesList = idx.imAddresses[row.id]
	record.GroupList = idx.groups[row.id]

	record.Note = lookupText(idx.notes, row.id)
	record.NickName = lookupText(idx.nicknames, row.id)
	record.SipAddress = lookupText(idx.sips, row.id)
	record.Organization = idx.organizations[row.id]
	record.NameData = idx.names[row.id]
	return record
}

func lookupText(index map[int64]string, id int64) *string {
	v, ok := index[id]
	if !ok {
		return nil
	}
	return &v
}
