package substance

// seedSubstances is the built-in dataset.
var seedSubstances = []Substance{
	// Inorganic molecules
	{Name: "물", Formula: "H2O", Structure: "굽은형, O 중심, 비공유 전자쌍 2쌍", Category: CategoryInorganic},
	{Name: "이산화탄소", Formula: "CO2", Structure: "직선형, O=C=O", Category: CategoryInorganic},
	{Name: "암모니아", Formula: "NH3", Structure: "삼각뿔형, N에 비공유 전자쌍 1쌍", Category: CategoryInorganic},
	{Name: "시안화수소", Formula: "HCN", Aliases: []string{"청산수소", "청산"}, Structure: "H–C≡N 삼중 결합, 직선형", Category: CategoryInorganic},
	{Name: "과산화수소", Formula: "H2O2", Structure: "H–O–O–H, O–O 단일 결합", Category: CategoryInorganic},
	{Name: "염화나트륨", Formula: "NaCl", Aliases: []string{"소금"}, Structure: "이온 결정, Na⁺와 Cl⁻가 번갈아 배열", Category: CategoryInorganic},
	{Name: "수산화나트륨", Formula: "NaOH", Aliases: []string{"가성소다"}, Structure: "이온 결합 화합물, OH⁻ 이온 포함", Category: CategoryInorganic},
	{Name: "오존", Formula: "O3", Structure: "굽은형, 공명 구조", Category: CategoryInorganic},

	// Hydrocarbons
	{Name: "메테인", Formula: "CH4", Aliases: []string{"메탄"}, Structure: "정사면체형, 결합각 109.5°", Category: CategoryHydrocarbon},
	{Name: "에테인", Formula: "C2H6", Aliases: []string{"에탄"}, Structure: "C–C 단일 결합, sp3", Category: CategoryHydrocarbon},
	{Name: "프로페인", Formula: "C3H8", Aliases: []string{"프로판"}, Structure: "C 3개 사슬, 모두 단일 결합", Category: CategoryHydrocarbon},
	{Name: "에텐", Formula: "C2H4", Aliases: []string{"에틸렌"}, Structure: "C=C 이중 결합, 평면형, sp2", Category: CategoryHydrocarbon},
	{Name: "에타인", Formula: "C2H2", Aliases: []string{"에인", "아세틸렌"}, Structure: "C≡C 삼중 결합, 직선형, sp", Category: CategoryHydrocarbon},

	// Organic compounds containing oxygen
	{Name: "포름알데히드", Formula: "HCHO", Aliases: []string{"메탄알", "폼알데하이드"}, Structure: "알데하이드, H2C=O 평면 삼각형", Category: CategoryOrganic},
	{Name: "메탄올", Formula: "CH3OH", Aliases: []string{"메틸알코올", "메틸 알코올"}, Structure: "메틸기에 –OH 결합", Category: CategoryOrganic},
	{Name: "에탄올", Formula: "C2H5OH", Aliases: []string{"에틸알코올", "에틸 알코올"}, Structure: "에틸기에 –OH 결합", Category: CategoryOrganic},

	// Acids
	{Name: "아세트산", Formula: "CH3COOH", Aliases: []string{"에탄산", "초산"}, Structure: "카복실기 –COOH 포함", Category: CategoryAcid},
	{Name: "염화수소", Formula: "HCl", Aliases: []string{"염산"}, Structure: "H–Cl 극성 공유 결합, 직선형", Category: CategoryAcid},
	{Name: "황산", Formula: "H2SO4", Structure: "S 중심 사면체, S=O 2개와 S–OH 2개", Category: CategoryAcid},
	{Name: "질산", Formula: "HNO3", Structure: "N 중심 평면 삼각형, 공명 구조", Category: CategoryAcid},
}

// Seed returns a copy of the built-in dataset records.
func Seed() []Substance {
	out := make([]Substance, len(seedSubstances))
	for i, s := range seedSubstances {
		s.Aliases = append([]string(nil), s.Aliases...)
		out[i] = s
	}
	return out
}
