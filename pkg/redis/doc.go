// Package redis connects to the Redis server backing shared lockout
// state.
//
// Connect retries until the server answers a ping or the attempts are
// exhausted, so a Redis container still starting does not take the
// process down with it.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := lockout.NewRedisStore(client, lockoutCfg)
package redis
