package contacts

import (
	"context"

	"golang.org/x/sync/errgroup"

	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/enum/field_type_enum"
)

// satelliteIndexes 一次聚合中各类别的 联系人ID -> 属性 索引
// 未启用的类别索引为 nil，查找结果即为未设置
type satelliteIndexes struct {
	phones        map[int64][]respond.PhoneNumber
	addresses     map[int64][]respond.Address
	emails        map[int64][]respond.Email
	websites      map[int64][]string
	specialDates  map[int64][]respond.SpecialDate
	relations     map[int64][]respond.Relation
	imAddresses   map[int64][]respond.IMAddress
	notes         map[int64]string
	nicknames     map[int64]string
	sips          map[int64]string
	organizations map[int64]*respond.Organization
	names         map[int64]*respond.NameData
	groups        map[int64][]*respond.Group
}

// fetchTask 填充 satelliteIndexes 中的一个字段，任务之间互不共享状态
type fetchTask func(ctx context.Context) error

// listTask 构造列表类别的查询任务
func listTask[V any](src source.Source, labels *LabelResolver, s satellite[V], dst *map[int64][]V) fetchTask {
	return func(ctx context.Context) error {
		index, err := collectList(ctx, src, labels, s)
		if err != nil {
			return err
		}
		*dst = index
		return nil
	}
}

// oneTask 构造单值类别的查询任务
func oneTask[V any](src source.Source, labels *LabelResolver, s satellite[V], dst *map[int64]V) fetchTask {
	return func(ctx context.Context) error {
		index, err := collectOne(ctx, src, labels, s)
		if err != nil {
			return err
		}
		*dst = index
		return nil
	}
}

// fetchSatellites 按查询计划加载所有启用类别的索引
// parallel 为 true 时各类别并发查询；全部完成后才返回，主表扫描不会读到未完成的索引
func fetchSatellites(ctx context.Context, src source.Source, plan Plan, labels *LabelResolver, parallel bool) (*satelliteIndexes, error) {
	idx := &satelliteIndexes{}

	var tasks []fetchTask
	add := func(field field_type_enum.FieldType, task fetchTask) {
		if plan.Fetch(field) {
			tasks = append(tasks, task)
		}
	}
	add(field_type_enum.PHONE_NUMBERS, listTask(src, labels, phones, &idx.phones))
	add(field_type_enum.ADDRESS, listTask(src, labels, addresses, &idx.addresses))
	add(field_type_enum.EMAILS, listTask(src, labels, emails, &idx.emails))
	add(field_type_enum.WEBSITES, listTask(src, labels, websites, &idx.websites))
	add(field_type_enum.SPECIAL_DATES, listTask(src, labels, specialDates, &idx.specialDates))
	add(field_type_enum.RELATIONS, listTask(src, labels, relations, &idx.relations))
	add(field_type_enum.IM_ADDRESSES, listTask(src, labels, imAddresses, &idx.imAddresses))
	add(field_type_enum.NOTES, oneTask(src, labels, notes, &idx.notes))
	add(field_type_enum.NICKNAME, oneTask(src, labels, nicknames, &idx.nicknames))
	add(field_type_enum.SIP, oneTask(src, labels, sips, &idx.sips))
	add(field_type_enum.ORGANIZATION, oneTask(src, labels, organizations, &idx.organizations))
	add(field_type_enum.NAME_DATA, oneTask(src, labels, names, &idx.names))
	add(field_type_enum.GROUPS, func(ctx context.Context) error {
		index, err := loadGroupIndex(ctx, src, labels)
		if err != nil {
			return err
		}
		idx.groups = index
		return nil
	})

	if !parallel {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				return nil, err
			}
		}
		return idx, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error { return task(gctx) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return idx, nil
}
