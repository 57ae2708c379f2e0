package repository

// Repository データリポジトリ
type Repository interface {
	// Sync リポジトリと実ストレージを同期します
	//
	// 初期化が行われた場合、trueを返します。
	// DBによるエラーを返すことがあります。
	Sync() (init bool, err error)
	FoodRepository
	OrderRepository
	KitchenRepository
	StatsRepository
}
