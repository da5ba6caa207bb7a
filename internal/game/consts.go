package game

const (
	TickMillis    = 33   // logical ms per simulation step (~30 ticks/s)
	UpdateRateHz  = 20.0 // per-client state pushes
	DefaultArenaW = 800.0
	DefaultArenaH = 500.0
	DefaultLevel  = 1

	PlayerSpeed    = 5.0 // units/tick
	PlayerStartX   = 50.0
	HomeSize       = 20.0
	HomeInsetRight = 100.0 // home center sits this far left of the right wall

	EnemySize       = 20.0
	RandomWalkSpeed = 3.0 // units/tick, one axis at a time
	ChaseSpeed      = 4.0 // units/tick along the pursuit vector
	FenceSpeed      = 4.0 // units/tick along the patrol square
	FenceSide       = 80.0
	FenceSpawnCount = 15
	FenceSpread     = 25.0 // max spawn offset from home per axis

	TeleportTicks  = 60 // ticks between relocations
	TeleportSpread = 200.0
	TeleportBatch  = 5

	RandomWalkDelayMS  = 1000
	RandomWalkPeriodMS = 1000
	ChaserDelayMS      = 2000
	ChaserPeriodMS     = 1000
	FencerDelayMS      = 3000
	TeleporterDelayMS  = 4000
	TeleporterPeriodMS = 500
)

const (
	ColorPlayer     = "green"
	ColorWaypoint   = "green"
	ColorHome       = "brown"
	ColorRandomWalk = "red"
	ColorChaser     = "purple"
	ColorFencer     = "blue"
	ColorTeleporter = "black"
	ColorDemo       = "gray"
)
