package training

const (
	MInKm  = 1000 // количество метров в одном километре
	MinInH = 60   // количество минут в одном часе

	LenStep         = 0.65 // длина одного шага в метрах
	SwimmingLenStep = 1.38 // длина одного гребка в метрах

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)
