package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	Name  string `json:"name" yaml:"name"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// Lifetimes in seconds.
	AccessExpire  int `json:"access_expire" yaml:"access_expire"`
	RefreshExpire int `json:"refresh_expire" yaml:"refresh_expire"`
}

func (j *Jwt) AccessTTL() time.Duration {
	if j.AccessExpire <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(j.AccessExpire) * time.Second
}

func (j *Jwt) RefreshTTL() time.Duration {
	if j.RefreshExpire <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(j.RefreshExpire) * time.Second
}
