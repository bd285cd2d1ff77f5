package contacts

import (
	"context"

	"go.uber.org/zap"

	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/errorx"
)

var linkageColumns = []string{"_id", "account_type", "account_name", colContactID}

// linkAccounts 扫描 raw_contacts，为已组装的记录补充账号名称和类型
// 不在本次结果中的联系人被忽略；同一联系人有多个账号时以最后一行为准
func (a *Aggregator) linkAccounts(ctx context.Context, byID map[int64]*respond.ContactData) error {
	rows, err := a.src.Scan(ctx, source.Query{Table: tableRawContacts, Projection: linkageColumns})
	if err != nil {
		return err
	}
	defer rows.Close()

	p, err := source.Resolve(tableRawContacts, rows, linkageColumns...)
	if err != nil {
		if errorx.IsSchemaMismatch(err) {
			zap.L().Warn("linkage projection unresolved, account fields left unset", zap.Error(err))
			return nil
		}
		return err
	}

	for p.Next() {
		if p.IsNull(3) {
			continue
		}
		id := p.Long(3)
		if id < 0 {
			continue
		}
		record, ok := byID[id]
		if !ok {
			continue
		}
		record.AccountType = p.String(1)
		record.AccountName = p.String(2)
	}
	return p.Err()
}
