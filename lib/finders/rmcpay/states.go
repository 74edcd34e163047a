package rmcpay

import "strings"

// RmcPay's search form posts its own numeric ids for US states,
// territories and Canadian provinces. Keys cover both the abbreviation
// and the full name since callers pass whatever the batch file had.
var stateIDs = map[string]string{
	"AL": "81", "ALABAMA": "81",
	"AK": "82", "ALASKA": "82",
	"AZ": "83", "ARIZONA": "83",
	"AR": "84", "ARKANSAS": "84",
	"CA": "85", "CALIFORNIA": "85",
	"CO": "86", "COLORADO": "86",
	"CT": "87", "CONNECTICUT": "87",
	"DE": "88", "DELAWARE": "88",
	"DC": "131", "DISTRICT OF COLUMBIA": "131",
	"FL": "89", "FLORIDA": "89",
	"GA": "90", "GEORGIA": "90",
	"GU": "663", "GUAM": "663",
	"HI": "91", "HAWAII": "91",
	"ID": "92", "IDAHO": "92",
	"IL": "93", "ILLINOIS": "93",
	"IN": "94", "INDIANA": "94",
	"IA": "95", "IOWA": "95",
	"KS": "96", "KANSAS": "96",
	"KY": "97", "KENTUCKY": "97",
	"LA": "98", "LOUISIANA": "98",
	"ME": "99", "MAINE": "99",
	"MD": "100", "MARYLAND": "100",
	"MA": "101", "MASSACHUSETTS": "101",
	"MI": "102", "MICHIGAN": "102",
	"MN": "103", "MINNESOTA": "103",
	"MS": "104", "MISSISSIPPI": "104",
	"MO": "105", "MISSOURI": "105",
	"MT": "106", "MONTANA": "106",
	"NE": "107", "NEBRASKA": "107",
	"NV": "108", "NEVADA": "108",
	"NH": "109", "NEW HAMPSHIRE": "109",
	"NJ": "110", "NEW JERSEY": "110",
	"NM": "111", "NEW MEXICO": "111",
	"NY": "112", "NEW YORK": "112",
	"NC": "113", "NORTH CAROLINA": "113",
	"ND": "114", "NORTH DAKOTA": "114",
	"OH": "115", "OHIO": "115",
	"OK": "116", "OKLAHOMA": "116",
	"OR": "117", "OREGON": "117",
	"PA": "118", "PENNSYLVANIA": "118",
	"PR": "495", "PUERTO RICO": "495",
	"RI": "119", "RHODE ISLAND": "119",
	"SC": "120", "SOUTH CAROLINA": "120",
	"SD": "121", "SOUTH DAKOTA": "121",
	"TN": "122", "TENNESSEE": "122",
	"TX": "123", "TEXAS": "123",
	"UT": "124", "UTAH": "124",
	"VT": "125", "VERMONT": "125",
	"VI": "613", "VIRGIN ISLANDS": "613",
	"VA": "126", "VIRGINIA": "126",
	"WA": "127", "WASHINGTON": "127",
	"WV": "128", "WEST VIRGINIA": "128",
	"WI": "129", "WISCONSIN": "129",
	"WY": "130", "WYOMING": "130",

	"AB": "193", "ALBERTA": "193",
	"BC": "194", "BRITISH COLUMBIA": "194",
	"MB": "195", "MANITOBA": "195",
	"NB": "196", "NEW BRUNSWICK": "196",
	"NL": "197", "NEWFOUNDLAND AND LABRADOR": "197",
	"NT": "198", "NORTHWEST TERRITORIES": "198",
	"NS": "199", "NOVA SCOTIA": "199",
	"NU": "200", "NUNAVUT": "200",
	"ON": "201", "ONTARIO": "201",
	"PE": "202", "PRINCE EDWARD ISLAND": "202",
	"QC": "203", "QUEBEC": "203",
	"SK": "204", "SASKATCHEWAN": "204",
	"YT": "205", "YUKON": "205",
}

// StateID maps a state to RmcPay's form id. Unrecognized input passes
// through unchanged, matching what the form itself would submit.
func StateID(state string) string {
	if id, ok := stateIDs[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return id
	}
	return state
}
