package validation

type Country struct {
	Code     string `json:"code"`
	DialCode string `json:"dial_code"`
	Name     string `json:"name"`
}

const defaultCountryCode = "NG"

var countries = []Country{
	{Code: "DZ", DialCode: "+213", Name: "Algeria"},
	{Code: "AO", DialCode: "+244", Name: "Angola"},
	{Code: "BJ", DialCode: "+229", Name: "Benin"},
	{Code: "BW", DialCode: "+267", Name: "Botswana"},
	{Code: "BF", DialCode: "+226", Name: "Burkina Faso"},
	{Code: "BI", DialCode: "+257", Name: "Burundi"},
	{Code: "CM", DialCode: "+237", Name: "Cameroon"},
	{Code: "CV", DialCode: "+238", Name: "Cape Verde"},
	{Code: "CF", DialCode: "+236", Name: "Central African Republic"},
	{Code: "TD", DialCode: "+235", Name: "Chad"},
	{Code: "KM", DialCode: "+269", Name: "Comoros"},
	{Code: "CD", DialCode: "+243", Name: "DR Congo"},
	{Code: "DJ", DialCode: "+253", Name: "Djibouti"},
	{Code: "EG", DialCode: "+20", Name: "Egypt"},
	{Code: "GQ", DialCode: "+240", Name: "Equatorial Guinea"},
	{Code: "ER", DialCode: "+291", Name: "Eritrea"},
	{Code: "ET", DialCode: "+251", Name: "Ethiopia"},
	{Code: "GA", DialCode: "+241", Name: "Gabon"},
	{Code: "GM", DialCode: "+220", Name: "Gambia"},
	{Code: "GH", DialCode: "+233", Name: "Ghana"},
	{Code: "GN", DialCode: "+224", Name: "Guinea"},
	{Code: "GW", DialCode: "+245", Name: "Guinea-Bissau"},
	{Code: "CI", DialCode: "+225", Name: "Ivory Coast"},
	{Code: "KE", DialCode: "+254", Name: "Kenya"},
	{Code: "LS", DialCode: "+266", Name: "Lesotho"},
	{Code: "LR", DialCode: "+231", Name: "Liberia"},
	{Code: "LY", DialCode: "+218", Name: "Libya"},
	{Code: "MG", DialCode: "+261", Name: "Madagascar"},
	{Code: "MW", DialCode: "+265", Name: "Malawi"},
	{Code: "ML", DialCode: "+223", Name: "Mali"},
	{Code: "MR", DialCode: "+222", Name: "Mauritania"},
	{Code: "MU", DialCode: "+230", Name: "Mauritius"},
	{Code: "MZ", DialCode: "+258", Name: "Mozambique"},
	{Code: "NA", DialCode: "+264", Name: "Namibia"},
	{Code: "NE", DialCode: "+227", Name: "Niger"},
	{Code: "NG", DialCode: "+234", Name: "Nigeria"},
	{Code: "RW", DialCode: "+250", Name: "Rwanda"},
	{Code: "SH", DialCode: "+290", Name: "Saint Helena"},
	{Code: "ST", DialCode: "+239", Name: "São Tomé and Príncipe"},
	{Code: "SN", DialCode: "+221", Name: "Senegal"},
	{Code: "SC", DialCode: "+248", Name: "Seychelles"},
	{Code: "SL", DialCode: "+232", Name: "Sierra Leone"},
	{Code: "ZA", DialCode: "+27", Name: "South Africa"},
	{Code: "SS", DialCode: "+211", Name: "South Sudan"},
	{Code: "SD", DialCode: "+249", Name: "Sudan"},
	{Code: "SZ", DialCode: "+268", Name: "Eswatini"},
	{Code: "TZ", DialCode: "+255", Name: "Tanzania"},
	{Code: "TG", DialCode: "+228", Name: "Togo"},
	{Code: "TN", DialCode: "+216", Name: "Tunisia"},
	{Code: "UG", DialCode: "+256", Name: "Uganda"},
	{Code: "ZM", DialCode: "+260", Name: "Zambia"},
	{Code: "ZW", DialCode: "+263", Name: "Zimbabwe"},
}

func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

func CountryByCode(code string) (Country, bool) {
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

func DefaultCountry() Country {
	c, _ := CountryByCode(defaultCountryCode)
	return c
}
