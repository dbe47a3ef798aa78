// Package schema 定义房产属性目录：类别属性的序数编码表、全量特征
// 列顺序、默认值表以及展示用的友好名称。目录在启动时构建一次，之后只读。
package schema

import (
	"fmt"

	"github.com/rushteam/pricekit/core"
)

// Level 是类别属性的一个取值：属性码与训练时使用的序数。
type Level struct {
	Code    string  `json:"code" yaml:"code"`
	Ordinal float64 `json:"ordinal" yaml:"ordinal"`
}

// CategoricalAttr 是一个类别属性的编码表。
// Default 是该属性的“典型取值”码：未知码按此取值的序数编码。
type CategoricalAttr struct {
	Name    string  `json:"name" yaml:"name"`
	Levels  []Level `json:"levels" yaml:"levels"`
	Default string  `json:"default" yaml:"default"`
}

// Ordinal 查找 code 对应的序数。
func (a *CategoricalAttr) Ordinal(code string) (float64, bool) {
	for _, lv := range a.Levels {
		if lv.Code == code {
			return lv.Ordinal, true
		}
	}
	return 0, false
}

// Catalog 是属性目录：按属性名索引的类别编码表。
//
// 编码与展示共用同一份目录，保证两侧永远一致。
type Catalog struct {
	attrs map[string]*CategoricalAttr
	names []string
}

// NewCatalog 从属性表构建目录，保留传入顺序。
func NewCatalog(attrs []CategoricalAttr) *Catalog {
	c := &Catalog{
		attrs: make(map[string]*CategoricalAttr, len(attrs)),
		names: make([]string, 0, len(attrs)),
	}
	for i := range attrs {
		a := attrs[i]
		c.attrs[a.Name] = &a
		c.names = append(c.names, a.Name)
	}
	return c
}

// IsCategorical 判断属性是否为类别属性。
func (c *Catalog) IsCategorical(name string) bool {
	_, ok := c.attrs[name]
	return ok
}

// Attr 返回属性的编码表，不存在时返回 nil。
func (c *Catalog) Attr(name string) *CategoricalAttr {
	return c.attrs[name]
}

// Names 返回全部类别属性名（构建顺序）。
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Ordinal 查找属性码对应的序数。
// 属性不是类别属性，或码不在编码表内时返回 (0, false)。
func (c *Catalog) Ordinal(name, code string) (float64, bool) {
	attr, ok := c.attrs[name]
	if !ok {
		return 0, false
	}
	return attr.Ordinal(code)
}

// DefaultOrdinal 返回属性默认取值（典型取值）的序数。
// 属性不是类别属性时返回 (0, false)。
func (c *Catalog) DefaultOrdinal(name string) (float64, bool) {
	attr, ok := c.attrs[name]
	if !ok {
		return 0, false
	}
	return attr.Ordinal(attr.Default)
}

// Validate 检查目录自身的一致性：
//   - 每个属性至少有一个取值
//   - 每个属性的默认码必须出现在其编码表内
//   - 同一属性内取值码不重复
//
// 目录不一致属于配置错误，应在启动时失败。
func (c *Catalog) Validate() error {
	for _, name := range c.names {
		attr := c.attrs[name]
		if len(attr.Levels) == 0 {
			return core.NewDomainError(core.ModuleSchema, core.ErrorCodeInvalidInput,
				fmt.Sprintf("schema: attribute %q has no levels", name))
		}
		seen := make(map[string]bool, len(attr.Levels))
		for _, lv := range attr.Levels {
			if seen[lv.Code] {
				return core.NewDomainError(core.ModuleSchema, core.ErrorCodeInvalidInput,
					fmt.Sprintf("schema: attribute %q has duplicate code %q", name, lv.Code))
			}
			seen[lv.Code] = true
		}
		if _, ok := attr.Ordinal(attr.Default); !ok {
			return core.NewDomainError(core.ModuleSchema, core.ErrorCodeInvalidInput,
				fmt.Sprintf("schema: attribute %q default code %q not in levels", name, attr.Default))
		}
	}
	return nil
}

// Default 返回内置的属性目录：Ames 住宅数据集的 13 个类别属性，
// 序数与默认码和训练侧保持一致。
func Default() *Catalog {
	return NewCatalog([]CategoricalAttr{
		{
			Name: "MSZoning",
			Levels: []Level{
				{Code: "C", Ordinal: 0}, {Code: "RM", Ordinal: 1}, {Code: "RH", Ordinal: 2},
				{Code: "RL", Ordinal: 3}, {Code: "FV", Ordinal: 4},
			},
			Default: "RL",
		},
		{
			Name: "Neighborhood",
			Levels: []Level{
				{Code: "MeadowV", Ordinal: 0}, {Code: "IDOTRR", Ordinal: 1}, {Code: "BrDale", Ordinal: 2},
				{Code: "OldTown", Ordinal: 3}, {Code: "Edwards", Ordinal: 4}, {Code: "BrkSide", Ordinal: 5},
				{Code: "Sawyer", Ordinal: 6}, {Code: "Blueste", Ordinal: 7}, {Code: "SWISU", Ordinal: 8},
				{Code: "NAmes", Ordinal: 9}, {Code: "NPkVill", Ordinal: 10}, {Code: "Mitchel", Ordinal: 11},
				{Code: "SawyerW", Ordinal: 12}, {Code: "Gilbert", Ordinal: 13}, {Code: "NWAmes", Ordinal: 14},
				{Code: "Blmngtn", Ordinal: 15}, {Code: "CollgCr", Ordinal: 16}, {Code: "ClearCr", Ordinal: 17},
				{Code: "Crawfor", Ordinal: 18}, {Code: "Veenker", Ordinal: 19}, {Code: "Somerst", Ordinal: 20},
				{Code: "Timber", Ordinal: 21}, {Code: "StoneBr", Ordinal: 22}, {Code: "NoRidge", Ordinal: 23},
				{Code: "NridgHt", Ordinal: 24},
			},
			Default: "SawyerW",
		},
		{
			Name: "RoofStyle",
			Levels: []Level{
				{Code: "Gable", Ordinal: 1}, {Code: "Hip", Ordinal: 2}, {Code: "Gambrel", Ordinal: 3},
				{Code: "Mansard", Ordinal: 4}, {Code: "Flat", Ordinal: 5}, {Code: "Shed", Ordinal: 6},
			},
			Default: "Gable",
		},
		{
			Name: "BsmtQual",
			Levels: []Level{
				{Code: "NA", Ordinal: 0}, {Code: "Fa", Ordinal: 1}, {Code: "TA", Ordinal: 2},
				{Code: "Gd", Ordinal: 3}, {Code: "Ex", Ordinal: 4},
			},
			Default: "Gd",
		},
		{
			Name: "BsmtExposure",
			Levels: []Level{
				{Code: "NA", Ordinal: 0}, {Code: "No", Ordinal: 1}, {Code: "Mn", Ordinal: 2},
				{Code: "Av", Ordinal: 3}, {Code: "Gd", Ordinal: 4},
			},
			Default: "Mn",
		},
		{
			Name: "HeatingQC",
			Levels: []Level{
				{Code: "Po", Ordinal: 1}, {Code: "Fa", Ordinal: 2}, {Code: "TA", Ordinal: 3},
				{Code: "Gd", Ordinal: 4}, {Code: "Ex", Ordinal: 5},
			},
			Default: "Gd",
		},
		{
			Name: "CentralAir",
			Levels: []Level{
				{Code: "N", Ordinal: 0}, {Code: "Y", Ordinal: 1},
			},
			Default: "Y",
		},
		{
			Name: "KitchenQual",
			Levels: []Level{
				{Code: "Fa", Ordinal: 1}, {Code: "TA", Ordinal: 2}, {Code: "Gd", Ordinal: 3},
				{Code: "Ex", Ordinal: 4},
			},
			Default: "Gd",
		},
		{
			Name: "FireplaceQu",
			Levels: []Level{
				{Code: "NA", Ordinal: 0}, {Code: "Po", Ordinal: 1}, {Code: "Fa", Ordinal: 2},
				{Code: "TA", Ordinal: 3}, {Code: "Gd", Ordinal: 4}, {Code: "Ex", Ordinal: 5},
			},
			Default: "TA",
		},
		{
			Name: "GarageType",
			Levels: []Level{
				{Code: "NA", Ordinal: 0}, {Code: "Detchd", Ordinal: 1}, {Code: "CarPort", Ordinal: 2},
				{Code: "BuiltIn", Ordinal: 3}, {Code: "Attchd", Ordinal: 4},
			},
			Default: "Detchd",
		},
		{
			Name: "GarageFinish",
			Levels: []Level{
				{Code: "NA", Ordinal: 0}, {Code: "Unf", Ordinal: 1}, {Code: "RFn", Ordinal: 2},
				{Code: "Fin", Ordinal: 3},
			},
			Default: "RFn",
		},
		{
			Name: "PavedDrive",
			Levels: []Level{
				{Code: "N", Ordinal: 0}, {Code: "P", Ordinal: 1}, {Code: "Y", Ordinal: 2},
			},
			Default: "Y",
		},
		{
			Name: "SaleCondition",
			Levels: []Level{
				{Code: "AdjLand", Ordinal: 0}, {Code: "Abnorml", Ordinal: 1}, {Code: "Alloca", Ordinal: 2},
				{Code: "Family", Ordinal: 3}, {Code: "Normal", Ordinal: 4}, {Code: "Partial", Ordinal: 5},
			},
			Default: "Normal",
		},
	})
}
