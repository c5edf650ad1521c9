package directory

import "github.com/veloguard/veloguard-backend/internal/core/domain"

// endpoints lists the online submission channel of every German federal
// state. Static reference data; a miss means no online channel exists,
// which is not an error.
var endpoints = []domain.JurisdictionEndpoint{
	{Region: "Baden-Württemberg", Name: "Onlinewache Polizei BW", URL: "https://www.polizei-bw.de/onlinewache/"},
	{Region: "Bayern", Name: "Bayerische Polizei - Anzeige", URL: "https://www.polizei.bayern.de/service/anzeige-erstatten/index.html"},
	{Region: "Berlin", Name: "Internetwache Polizei Berlin", URL: "https://www.internetwache-polizei-berlin.de/"},
	{Region: "Brandenburg", Name: "Internetwache Brandenburg", URL: "https://polizei.brandenburg.de/onlineservice/anzeige"},
	{Region: "Bremen", Name: "Onlinewache Bremen", URL: "https://www.onlinewache.bremen.de/"},
	{Region: "Hamburg", Name: "Onlinewache Hamburg", URL: "https://www.polizei.hamburg/onlinewache"},
	{Region: "Hessen", Name: "Onlinewache Hessen", URL: "https://ppffm.polizei.hessen.de/Ueber-uns/Ansprechpartner/Onlinewache/"},
	{Region: "Mecklenburg-Vorpommern", Name: "Internetwache MV", URL: "https://www.polizei.mvnet.de/Onlinewache/"},
	{Region: "Niedersachsen", Name: "Onlinewache Niedersachsen", URL: "https://www.onlinewache.polizei.niedersachsen.de/"},
	{Region: "Nordrhein-Westfalen", Name: "Internetwache NRW", URL: "https://service.polizei.nrw.de/anzeige"},
	{Region: "Rheinland-Pfalz", Name: "Onlinewache RLP", URL: "https://www.polizei.rlp.de/de/onlinewache/"},
	{Region: "Saarland", Name: "Onlinewache Saarland", URL: "https://www.saarland.de/polizei/DE/onlinewache/onlinewache_node.html"},
	{Region: "Sachsen", Name: "Onlinewache Sachsen", URL: "https://www.polizei.sachsen.de/de/onlinewache.htm"},
	{Region: "Sachsen-Anhalt", Name: "E-Revier Sachsen-Anhalt", URL: "https://polizei.sachsen-anhalt.de/das-sind-wir/e-revier/"},
	{Region: "Schleswig-Holstein", Name: "Onlinewache SH", URL: "https://www.schleswig-holstein.de/DE/Landesregierung/POLIZEI/Polizeistationen/Onlinewache/onlinewache_node.html"},
	{Region: "Thüringen", Name: "Onlinewache Thüringen", URL: "https://polizei.thueringen.de/landespolizeiinspektionen/onlinewache"},
}

type Directory struct {
	byRegion map[string]domain.JurisdictionEndpoint
}

func New() *Directory {
	byRegion := make(map[string]domain.JurisdictionEndpoint, len(endpoints))
	for _, e := range endpoints {
		byRegion[e.Region] = e
	}
	return &Directory{byRegion: byRegion}
}

// Lookup resolves a region by exact name match.
func (d *Directory) Lookup(region string) (*domain.JurisdictionEndpoint, bool) {
	endpoint, ok := d.byRegion[region]
	if !ok {
		return nil, false
	}
	return &endpoint, true
}

func (d *Directory) All() []domain.JurisdictionEndpoint {
	all := make([]domain.JurisdictionEndpoint, len(endpoints))
	copy(all, endpoints)
	return all
}
