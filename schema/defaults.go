package schema

// FullColumns 返回全量特征列的兜底顺序（82 列）：
// Ames 数据集的 79 个属性列，外加训练侧生成的 3 个缺失指示列。
// 标准化器工件自带列顺序时优先使用工件记录的顺序。
func FullColumns() []string {
	return []string{
		"MSSubClass", "MSZoning", "LotFrontage", "LotArea", "Street", "Alley",
		"LotShape", "LandContour", "Utilities", "LotConfig", "LandSlope",
		"Neighborhood", "Condition1", "Condition2", "BldgType", "HouseStyle",
		"OverallQual", "OverallCond", "YearBuilt", "YearRemodAdd", "RoofStyle",
		"RoofMatl", "Exterior1st", "Exterior2nd", "MasVnrType", "MasVnrArea",
		"ExterQual", "ExterCond", "Foundation", "BsmtQual", "BsmtCond",
		"BsmtExposure", "BsmtFinType1", "BsmtFinSF1", "BsmtFinType2",
		"BsmtFinSF2", "BsmtUnfSF", "TotalBsmtSF", "Heating", "HeatingQC",
		"CentralAir", "Electrical", "1stFlrSF", "2ndFlrSF", "LowQualFinSF",
		"GrLivArea", "BsmtFullBath", "BsmtHalfBath", "FullBath", "HalfBath",
		"BedroomAbvGr", "KitchenAbvGr", "KitchenQual", "TotRmsAbvGrd",
		"Functional", "Fireplaces", "FireplaceQu", "GarageType", "GarageYrBlt",
		"GarageFinish", "GarageCars", "GarageArea", "GarageQual", "GarageCond",
		"PavedDrive", "WoodDeckSF", "OpenPorchSF", "EnclosedPorch", "3SsnPorch",
		"ScreenPorch", "PoolArea", "PoolQC", "Fence", "MiscFeature", "MiscVal",
		"MoSold", "YrSold", "SaleType", "SaleCondition",
		"LotFrontagenan", "MasVnrAreanan", "GarageYrBltnan",
	}
}

// FallbackModelFeatures 返回精简特征列表的最终兜底（21 个）。
// 模型工件自述列表和外部特征清单都不可用时使用。
func FallbackModelFeatures() []string {
	return []string{
		"MSSubClass", "MSZoning", "Neighborhood", "OverallQual", "YearRemodAdd",
		"RoofStyle", "BsmtQual", "BsmtExposure", "HeatingQC", "CentralAir",
		"1stFlrSF", "GrLivArea", "BsmtFullBath", "KitchenQual", "Fireplaces",
		"FireplaceQu", "GarageType", "GarageFinish", "GarageCars", "PavedDrive",
		"SaleCondition",
	}
}

// Defaults 返回全量向量组装时的默认值表。
// 训练侧在编码后的数值空间里为每列选定的“合理典型值”，
// 年份类列（YearBuilt/GarageYrBlt）在训练侧已转换为房龄。
func Defaults() map[string]float64 {
	return map[string]float64{
		"LotFrontage":    70.0,
		"LotArea":        8000.0,
		"Street":         1,
		"Alley":          0,
		"LotShape":       3,
		"LandContour":    0,
		"Utilities":      0,
		"LotConfig":      4,
		"LandSlope":      0,
		"Condition1":     2,
		"Condition2":     2,
		"BldgType":       0,
		"HouseStyle":     5,
		"OverallCond":    5,
		"YearBuilt":      30,
		"RoofMatl":       0,
		"Exterior1st":    12,
		"Exterior2nd":    12,
		"MasVnrType":     1,
		"MasVnrArea":     100.0,
		"ExterQual":      3,
		"ExterCond":      3,
		"Foundation":     2,
		"BsmtCond":       3,
		"BsmtFinType1":   5,
		"BsmtFinSF1":     400.0,
		"BsmtFinType2":   5,
		"BsmtFinSF2":     0.0,
		"BsmtUnfSF":      400.0,
		"TotalBsmtSF":    800.0,
		"Heating":        1,
		"Electrical":     4,
		"2ndFlrSF":       0.0,
		"LowQualFinSF":   0.0,
		"BsmtHalfBath":   0,
		"FullBath":       2,
		"HalfBath":       0,
		"BedroomAbvGr":   3,
		"KitchenAbvGr":   1,
		"TotRmsAbvGrd":   7,
		"Functional":     6,
		"GarageYrBlt":    30,
		"GarageArea":     500.0,
		"GarageQual":     3,
		"GarageCond":     3,
		"WoodDeckSF":     0.0,
		"OpenPorchSF":    0.0,
		"EnclosedPorch":  0.0,
		"3SsnPorch":      0.0,
		"ScreenPorch":    0.0,
		"PoolArea":       0.0,
		"PoolQC":         0,
		"Fence":          0,
		"MiscFeature":    0,
		"MiscVal":        0.0,
		"MoSold":         6,
		"YrSold":         2010,
		"SaleType":       8,
		"LotFrontagenan": 0,
		"MasVnrAreanan":  0,
		"GarageYrBltnan": 0,
	}
}

// DefaultValue 返回某列的默认值；默认值表中没有的列一律取 0。
func DefaultValue(name string) float64 {
	return Defaults()[name]
}
