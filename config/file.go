package config

// File is the on-disk layout. Pointer fields are optional overlays on the
// defaults; ranges and sizes are two-element arrays.
type File struct {
	Layout    Layout    `toml:"layout"`
	Footprint Footprint `toml:"footprint"`
	Roof      Roof      `toml:"roof"`
	Mesh      Mesh      `toml:"mesh"`
	Floor     []Floor   `toml:"floor"`
}

type Layout struct {
	Floors       *int        `toml:"floors"`
	Grid         *[2]int     `toml:"grid"`
	CellSize     *[3]float64 `toml:"cell_size"`
	Mode         *string     `toml:"mode"`
	RandomSeed   *bool       `toml:"random_seed"`
	Seed         *int64      `toml:"seed"`
	SharedMeshes *bool       `toml:"shared_meshes"`
	CacheSize    *int        `toml:"cache_size"`
}

type Footprint struct {
	BaseMin       *[2]int `toml:"base_min"`
	BaseMax       *[2]int `toml:"base_max"`
	Offshoots     *[2]int `toml:"offshoots"`
	OffshootMin   *[2]int `toml:"offshoot_min"`
	OffshootMax   *[2]int `toml:"offshoot_max"`
	Notches       *bool   `toml:"notches"`
	NotchCount    *[2]int `toml:"notch_count"`
	NotchMin      *[2]int `toml:"notch_min"`
	NotchMax      *[2]int `toml:"notch_max"`
	UpperVariance *[2]int `toml:"upper_variance"`
	Front         *string `toml:"front"`
	WindowSpacing *int    `toml:"window_spacing"`
	GroundWindows *bool   `toml:"ground_windows"`
	CopyGround    *bool   `toml:"copy_ground"`
}

type Roof struct {
	Strategy            *string  `toml:"strategy"`
	MinCells            *int     `toml:"min_cells"`
	MinWorldSpan        *float64 `toml:"min_world_span"`
	OrientPerpendicular *bool    `toml:"orient_perpendicular"`
	MinSharedEdge       *float64 `toml:"min_shared_edge"`
	MinJoinRatio        *float64 `toml:"min_join_ratio"`
	PreferGlobalRidge   *bool    `toml:"prefer_global_ridge"`
	GlobalAxisBias      *float64 `toml:"global_axis_bias"`
}

type Mesh struct {
	Pitch          *float64    `toml:"pitch"`
	Overhang       *float64    `toml:"overhang"`
	ExtendIntoMain *bool       `toml:"extend_into_main"`
	MergeExtension *float64    `toml:"merge_extension"`
	MergeDrop      *float64    `toml:"merge_drop"`
	RidgeCap       *bool       `toml:"ridge_cap"`
	RidgeCapWidth  *float64    `toml:"ridge_cap_width"`
	RidgeCapDrop   *float64    `toml:"ridge_cap_drop"`
	Fascia         *bool       `toml:"fascia"`
	FasciaDepth    *float64    `toml:"fascia_depth"`
	SlopeUV        *[2]float64 `toml:"slope_uv"`
	EndCapUV       *[2]float64 `toml:"end_cap_uv"`
}

// Floor is one hand-authored grid, first row north
type Floor struct {
	Rows []string `toml:"rows"`
}
