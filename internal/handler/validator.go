package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"

	"kama_contact_sync/pkg/enum/field_type_enum"
)

// Trans 定义全局翻译器 (导出供 response.go 使用)
var Trans ut.Translator

// fieldTypeTag 属性类别校验标签，值可以是逗号分隔的多个类别
const fieldTypeTag = "field_type"

// InitTrans 初始化翻译器并注册自定义校验
// locale 参数指定需要初始化的语言，例如 "zh" 或 "en"
func InitTrans(locale string) (err error) {

	// 在 Gin v1.9+ 中 binding.Validator 可能为 nil，需要先初始化
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	// binding.Validator.Engine() 返回的是 interface{}，需要断言为 *validator.Validate 类型
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// 报错信息使用 json tag（如 updated_since）而不是结构体字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(fieldTypeTag, validateFieldType); err != nil {
		return err
	}

	zhT := zh.New() // 初始化中文翻译器
	enT := en.New() // 初始化英文翻译器

	// 第一个参数是备用（fallback）的语言环境，后面的参数是应该支持的语言环境
	uni := ut.New(enT, zhT, enT)

	Trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	// 根据 locale 注册对应的默认翻译规则
	fieldTypeMsg := "{0} must be one of " + strings.Join(fieldTypeNames(), ", ")
	switch locale {
	case "zh":
		err = zh_translations.RegisterDefaultTranslations(v, Trans)
		fieldTypeMsg = "{0}必须是以下属性类别之一: " + strings.Join(fieldTypeNames(), ", ")
	default:
		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	if err != nil {
		return err
	}

	return v.RegisterTranslation(fieldTypeTag, Trans,
		func(ut ut.Translator) error {
			return ut.Add(fieldTypeTag, fieldTypeMsg, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fieldTypeTag, fe.Field())
			return t
		},
	)
}

// validateFieldType 校验属性类别名称
func validateFieldType(fl validator.FieldLevel) bool {
	fields, err := field_type_enum.ParseList([]string{fl.Field().String()})
	return err == nil && len(fields) > 0
}

func fieldTypeNames() []string {
	names := make([]string, len(field_type_enum.All))
	for i, f := range field_type_enum.All {
		names[i] = string(f)
	}
	return names
}

// RemoveTopStruct 去除提示信息中的结构体名称 (导出供 response.go 使用)
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string)
	for field, err := range fields {
		// 截取点号之后的部分
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}

// defaultValidator 是一个实现了 StructValidator 接口的结构体
// 用于在 Gin v1.9+ 中初始化 binding.Validator
type defaultValidator struct {
	validator *validator.Validate
}

// ValidateStruct 实现 StructValidator 接口的 ValidateStruct 方法
func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	return v.validator.Struct(obj)
}

// Engine 实现 StructValidator 接口的 Engine 方法
func (v *defaultValidator) Engine() interface{} {
	return v.validator
}
