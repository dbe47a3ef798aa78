package schema

// 展示层的友好名称与取值说明。仅用于 UI/日志侧的查表，不参与编码。

var displayNames = map[string]string{
	"MSSubClass":    "Building Class",
	"MSZoning":      "Zoning Classification",
	"LotFrontage":   "Street Frontage (feet)",
	"LotArea":       "Lot Size (sq ft)",
	"Street":        "Road Type",
	"Alley":         "Alley Access",
	"LotShape":      "Lot Shape",
	"LandContour":   "Property Flatness",
	"Utilities":     "Available Utilities",
	"LotConfig":     "Lot Configuration",
	"LandSlope":     "Land Slope",
	"Neighborhood":  "Neighborhood",
	"Condition1":    "Proximity to Main Road",
	"Condition2":    "Secondary Proximity",
	"BldgType":      "Building Type",
	"HouseStyle":    "House Style",
	"OverallQual":   "Overall Quality (1-10)",
	"OverallCond":   "Overall Condition (1-10)",
	"YearBuilt":     "Year Built",
	"YearRemodAdd":  "Year Renovated",
	"RoofStyle":     "Roof Style",
	"RoofMatl":      "Roof Material",
	"Exterior1st":   "Primary Exterior Material",
	"Exterior2nd":   "Secondary Exterior Material",
	"MasVnrType":    "Masonry Veneer Type",
	"MasVnrArea":    "Masonry Veneer Area (sq ft)",
	"ExterQual":     "Exterior Quality",
	"ExterCond":     "Exterior Condition",
	"Foundation":    "Foundation Type",
	"BsmtQual":      "Basement Quality",
	"BsmtCond":      "Basement Condition",
	"BsmtExposure":  "Basement Exposure",
	"BsmtFinType1":  "Basement Finish Type 1",
	"BsmtFinSF1":    "Basement Finished Area 1 (sq ft)",
	"BsmtFinType2":  "Basement Finish Type 2",
	"BsmtFinSF2":    "Basement Finished Area 2 (sq ft)",
	"BsmtUnfSF":     "Basement Unfinished Area (sq ft)",
	"TotalBsmtSF":   "Total Basement Area (sq ft)",
	"Heating":       "Heating Type",
	"HeatingQC":     "Heating Quality",
	"CentralAir":    "Central Air Conditioning",
	"Electrical":    "Electrical System",
	"1stFlrSF":      "First Floor Area (sq ft)",
	"2ndFlrSF":      "Second Floor Area (sq ft)",
	"LowQualFinSF":  "Low Quality Finished Area (sq ft)",
	"GrLivArea":     "Above Ground Living Area (sq ft)",
	"BsmtFullBath":  "Basement Full Bathrooms",
	"BsmtHalfBath":  "Basement Half Bathrooms",
	"FullBath":      "Full Bathrooms Above Ground",
	"HalfBath":      "Half Bathrooms Above Ground",
	"BedroomAbvGr":  "Bedrooms Above Ground",
	"KitchenAbvGr":  "Kitchens Above Ground",
	"KitchenQual":   "Kitchen Quality",
	"TotRmsAbvGrd":  "Total Rooms Above Ground",
	"Functional":    "Home Functionality",
	"Fireplaces":    "Number of Fireplaces",
	"FireplaceQu":   "Fireplace Quality",
	"GarageType":    "Garage Type",
	"GarageYrBlt":   "Garage Year Built",
	"GarageFinish":  "Garage Finish",
	"GarageCars":    "Garage Car Capacity",
	"GarageArea":    "Garage Area (sq ft)",
	"GarageQual":    "Garage Quality",
	"GarageCond":    "Garage Condition",
	"PavedDrive":    "Paved Driveway",
	"WoodDeckSF":    "Wood Deck Area (sq ft)",
	"OpenPorchSF":   "Open Porch Area (sq ft)",
	"EnclosedPorch": "Enclosed Porch Area (sq ft)",
	"3SsnPorch":     "Three Season Porch Area (sq ft)",
	"ScreenPorch":   "Screen Porch Area (sq ft)",
	"PoolArea":      "Pool Area (sq ft)",
	"PoolQC":        "Pool Quality",
	"Fence":         "Fence Quality",
	"MiscFeature":   "Miscellaneous Feature",
	"MiscVal":       "Miscellaneous Feature Value ($)",
	"MoSold":        "Month Sold",
	"YrSold":        "Year Sold",
	"SaleType":      "Sale Type",
	"SaleCondition": "Sale Condition",
	"SalePrice":     "Sale Price ($)",
}

var optionDescriptions = map[string]map[string]string{
	"MSZoning": {
		"C":  "Commercial",
		"FV": "Floating Village Residential",
		"RH": "Residential High Density",
		"RL": "Residential Low Density",
		"RM": "Residential Medium Density",
	},
	"Neighborhood": {
		"Blmngtn": "Bloomington Heights",
		"Blueste": "Bluestem",
		"BrDale":  "Briardale",
		"BrkSide": "Brookside",
		"ClearCr": "Clear Creek",
		"CollgCr": "College Creek",
		"Crawfor": "Crawford",
		"Edwards": "Edwards",
		"Gilbert": "Gilbert",
		"IDOTRR":  "Iowa DOT and Rail Road",
		"MeadowV": "Meadow Village",
		"Mitchel": "Mitchell",
		"NAmes":   "North Ames",
		"NoRidge": "Northridge",
		"NPkVill": "Northpark Villa",
		"NridgHt": "Northridge Heights",
		"NWAmes":  "Northwest Ames",
		"OldTown": "Old Town",
		"SWISU":   "South & West of Iowa State University",
		"Sawyer":  "Sawyer",
		"SawyerW": "Sawyer West",
		"Somerst": "Somerset",
		"StoneBr": "Stone Brook",
		"Timber":  "Timberland",
		"Veenker": "Veenker",
	},
	"RoofStyle": {
		"Flat":    "Flat",
		"Gable":   "Gable",
		"Gambrel": "Gambrel (Barn)",
		"Hip":     "Hip",
		"Mansard": "Mansard",
		"Shed":    "Shed",
	},
	"BsmtQual": {
		"Ex": "Excellent (100+ inches)",
		"Gd": "Good (90-99 inches)",
		"TA": "Typical (80-89 inches)",
		"Fa": "Fair (70-79 inches)",
		"Po": "Poor (<70 inches)",
		"NA": "No Basement",
	},
	"BsmtExposure": {
		"Gd": "Good Exposure",
		"Av": "Average Exposure",
		"Mn": "Minimum Exposure",
		"No": "No Exposure",
		"NA": "No Basement",
	},
	"HeatingQC": {
		"Ex": "Excellent",
		"Gd": "Good",
		"TA": "Typical/Average",
		"Fa": "Fair",
		"Po": "Poor",
	},
	"CentralAir": {
		"Y": "Yes",
		"N": "No",
	},
	"KitchenQual": {
		"Ex": "Excellent",
		"Gd": "Good",
		"TA": "Typical/Average",
		"Fa": "Fair",
	},
	"FireplaceQu": {
		"Ex": "Excellent",
		"Gd": "Good",
		"TA": "Typical/Average",
		"Fa": "Fair",
		"Po": "Poor",
		"NA": "No Fireplace",
	},
	"GarageType": {
		"Attchd":  "Attached to home",
		"BuiltIn": "Built-In (Garage part of house)",
		"CarPort": "Car Port",
		"Detchd":  "Detached from home",
		"NA":      "No Garage",
	},
	"GarageFinish": {
		"Fin": "Finished",
		"RFn": "Rough Finished",
		"Unf": "Unfinished",
		"NA":  "No Garage",
	},
	"PavedDrive": {
		"Y": "Paved",
		"P": "Partial Pavement",
		"N": "Dirt/Gravel",
	},
	"SaleCondition": {
		"Normal":  "Normal Sale",
		"Abnorml": "Abnormal Sale - trade, foreclosure, short sale",
		"AdjLand": "Adjoining Land Purchase",
		"Alloca":  "Allocation - two linked properties sold separately",
		"Family":  "Sale between family members",
		"Partial": "Home was not completed when last assessed",
	},
}

// DisplayName 返回属性的友好名称；没有映射时原样返回。
func DisplayName(name string) string {
	if friendly, ok := displayNames[name]; ok {
		return friendly
	}
	return name
}

// OptionDescription 返回类别属性某个取值码的说明；没有映射时原样返回码。
func OptionDescription(attr, code string) string {
	if opts, ok := optionDescriptions[attr]; ok {
		if desc, ok := opts[code]; ok {
			return desc
		}
	}
	return code
}

// Options 返回类别属性全部取值码的说明表；没有映射时返回 nil。
func Options(attr string) map[string]string {
	opts, ok := optionDescriptions[attr]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(opts))
	for k, v := range opts {
		out[k] = v
	}
	return out
}
