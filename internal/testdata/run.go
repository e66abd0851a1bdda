package testdata

const run = `[
	{"k":0,"z":0,"t":746000000},
	{"k":0,"z":1,"t":2058000000},
	{"k":0,"z":2,"t":3570000000},
	{"k":0,"z":1,"t":4947000000},
	{"k":0,"z":0,"t":4882000000},
	{"k":0,"z":1,"t":6393000000},
	{"k":0,"z":2,"t":7705000000},
	{"k":0,"z":0,"t":9216000000},
	{"k":0,"z":1,"t":10528000000},
	{"k":0,"z":2,"t":12040000000},
	{"k":0,"z":0,"t":13352000000},
	{"k":1,"b":10,"t":14824000000},
	{"k":1,"b":11,"t":16235000000},
	{"k":1,"b":12,"t":17647000000},
	{"k":1,"b":13,"t":19059000000},
	{"k":1,"b":14,"t":20471000000},
	{"k":0,"z":0,"t":22132000000},
	{"k":0,"z":1,"t":23334000000},
	{"k":0,"z":2,"t":24646000000},
	{"k":0,"z":0,"t":26158000000},
	{"k":0,"z":1,"t":27469000000},
	{"k":0,"z":2,"t":28981000000},
	{"k":0,"z":0,"t":30293000000},
	{"k":0,"z":1,"t":31805000000},
	{"k":0,"z":2,"t":33116000000},
	{"k":0,"z":0,"t":34628000000},
	{"k":0,"z":1,"t":35940000000},
	{"k":0,"z":2,"t":37452000000},
	{"k":0,"z":0,"t":38764000000},
	{"k":0,"z":1,"t":40275000000},
	{"k":0,"z":2,"t":41587000000},
	{"k":0,"z":0,"t":43099000000},
	{"k":0,"z":1,"t":44411000000}
]`
