package session

import (
	"context"

	"lendpool/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/mixin-sdk-go"
	"golang.org/x/sync/singleflight"
)

// New new session
func New(capacity int) core.Session {
	var s core.Session = &session{
		sf: &singleflight.Group{},
	}

	if capacity > 0 {
		s = &cacheSession{
			Session: s,
			tokens:  gcache.New(capacity).LRU().Build(),
		}
	}

	return s
}

type session struct {
	sf *singleflight.Group
}

func (s *session) Login(ctx context.Context, accessToken string) (*core.User, error) {
	user, err, _ := s.sf.Do(accessToken, func() (interface{}, error) {
		profile, err := mixin.UserMe(ctx, accessToken)
		if err != nil {
			return nil, core.ErrUnauthorized
		}

		return &core.User{
			UserID:      profile.UserID,
			Name:        profile.FullName,
			Avatar:      profile.AvatarURL,
			AccessToken: accessToken,
		}, nil
	})

	if err != nil {
		return nil, err
	}

	return user.(*core.User), nil
}

type cacheSession struct {
	core.Session
	tokens gcache.Cache
}

func (s *cacheSession) Login(ctx context.Context, accessToken string) (*core.User, error) {
	if v, err := s.tokens.Get(accessToken); err == nil {
		if user, ok := v.(*core.User); ok {
			return user, nil
		}
	}

	user, err := s.Session.Login(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	_ = s.tokens.Set(accessToken, user)
	return user, nil
}
