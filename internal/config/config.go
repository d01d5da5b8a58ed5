// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720
	MaxDeltaTime = 0.1 // защита от скачка после сворачивания окна
	TPS          = 60

	StarCount = 200

	PlayerRadius    = 25.0
	PlayerSpeed     = 250.0
	PlayerHealth    = 100
	PlayerOffsetY   = 80.0 // от нижнего края
	DragStopRadius  = 20.0
	PowerUpDuration = 8.0

	FireInterval      = 0.25
	FireIntervalStep  = 0.05 // за каждый уровень rapidFire
	MinFireInterval   = 0.05
	MaxMultiShotLevel = 3
	MaxRapidFireLevel = 4

	PlayerBulletRadius = 5.0
	PlayerBulletSpeed  = 500.0
	TwinShotOffset     = 10.0
	SpreadShotOffset   = 15.0
	SpreadShotDX       = 0.1

	EnemyRadius       = 35.0
	EnemySpawnY       = -20.0
	EnemyBaseSpeed    = 50.0
	EnemySpeedSpread  = 50.0
	EnemyFireCooldown = 3.0
	EnemyBulletRadius = 5.0
	EnemyBulletSpeed  = 150.0
	EnemySpreadAngle  = 0.2
	EnemySpawnChance  = 0.01 // вероятность за кадр при множителе 1.0
	StorySpawnRate    = 2.0

	BossRadius            = 40.0
	BossSpeed             = 100.0
	BossY                 = 100.0
	BossHealthFactor      = 20
	BossInitialCooldown   = 1.0
	BossBaseFireCooldown  = 1.5
	BossCooldownPerLevel  = 0.1
	MinBossFireCooldown   = 0.2
	BossSpecialEvery      = 5
	BossBulletRadius      = 8.0
	BossBigBulletRadius   = 15.0
	BossBulletSpeed       = 200.0
	BossBigBulletSpeedMul = 0.8
	BossReinforcements    = 5

	LaserWidth    = 10.0
	LaserDuration = 1.5
	LaserDamage   = 5

	ContactDamage     = 25
	EnemyBulletDamage = 15
	ScoreStandard     = 10
	ScoreBoss         = 100

	CureRadius         = 15.0
	WeaponDropRadius   = 12.0
	PowerUpFallSpeed   = 100.0
	WeaponDropOffsetX  = 30.0
	ExplosionDuration  = 0.5
	NotificationTTL    = 1.0
	TotalCures         = 4
	AdvisorIntervalSec = 15
	AdvisorTimeoutSec  = 5
)

var (
	BackgroundColor   = color.RGBA{5, 5, 16, 255}
	StarColor         = color.RGBA{255, 255, 255, 255}
	PlayerColor       = color.RGBA{160, 80, 190, 255}
	PlayerBoostColor  = color.RGBA{255, 215, 0, 255}
	PlayerBulletColor = color.RGBA{80, 176, 190, 255}
	EnemyBulletColor  = color.RGBA{255, 165, 0, 255}
	EnemyColor        = color.RGBA{255, 90, 90, 255}
	BossColor         = color.RGBA{216, 46, 46, 255}
	BossBarBackColor  = color.RGBA{68, 68, 68, 255}
	LaserColor        = color.RGBA{255, 0, 0, 128}
	ExplosionColor    = color.RGBA{255, 140, 40, 200}
	MultiShotColor    = color.RGBA{255, 215, 0, 255}
	RapidFireColor    = color.RGBA{80, 176, 190, 255}
	CureColor         = color.RGBA{76, 255, 126, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{0, 0, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	HealthBarColor    = color.RGBA{80, 200, 120, 255}
	NoticePowerColor  = color.RGBA{74, 222, 128, 255}
	NoticeBossColor   = color.RGBA{239, 68, 68, 255}
	IndicatorStroke   = color.RGBA{240, 240, 240, 255}
)
