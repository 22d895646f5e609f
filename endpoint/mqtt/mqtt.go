/*
 * Copyright 2025 The VisionQL Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package mqtt bridges a predictions topic to the query engine. Every
// message payload becomes the default operand of one evaluation; chain
// output is published to the result topic, while a group acts as a gate
// and republishes only the payloads it accepts.
package mqtt

import (
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/visionql/visionql"
	"github.com/visionql/visionql/api/types"
	"github.com/visionql/visionql/utils/json"
	"github.com/visionql/visionql/utils/maps"
)

// Config is the broker side of the endpoint.
type Config struct {
	Server      string `mapstructure:"server"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	ClientID    string `mapstructure:"client_id"`
	Topic       string `mapstructure:"topic"`
	ResultTopic string `mapstructure:"result_topic"`
	QOS         uint8  `mapstructure:"qos"`
}

// Endpoint subscribes to the predictions topic and evaluates one validated
// document per incoming message.
type Endpoint struct {
	Config       types.Config
	BrokerConfig Config

	chain  types.Chain
	group  types.Group
	client paho.Client
}

// New decodes the broker configuration.
func New(config types.Config, configuration types.Configuration) (*Endpoint, error) {
	e := &Endpoint{Config: config}
	if err := maps.Map2Struct(configuration, &e.BrokerConfig); err != nil {
		return nil, types.NewSchemaError("mqtt endpoint: %v", err)
	}
	if e.BrokerConfig.Server == "" || e.BrokerConfig.Topic == "" {
		return nil, types.NewSchemaError("mqtt endpoint requires server and topic")
	}
	return e, nil
}

// SetDocument validates and installs the query document the bridge runs.
func (e *Endpoint) SetDocument(dsl []byte) error {
	chain, group, err := visionql.Validate(e.Config, dsl)
	if err != nil {
		return err
	}
	e.chain, e.group = chain, group
	return nil
}

// Start connects to the broker and subscribes. SetDocument must have been
// called first.
func (e *Endpoint) Start() error {
	if e.chain == nil && e.group == nil {
		return types.NewSchemaError("mqtt endpoint has no document")
	}
	opts := paho.NewClientOptions().
		AddBroker(e.BrokerConfig.Server).
		SetClientID(e.BrokerConfig.ClientID).
		SetUsername(e.BrokerConfig.Username).
		SetPassword(e.BrokerConfig.Password).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)
	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	if token := client.Subscribe(e.BrokerConfig.Topic, e.BrokerConfig.QOS, e.onMessage); token.Wait() && token.Error() != nil {
		client.Disconnect(0)
		return token.Error()
	}
	e.client = client
	e.logf("mqtt endpoint subscribed to %s on %s", e.BrokerConfig.Topic, e.BrokerConfig.Server)
	return nil
}

// Destroy unsubscribes and drops the broker connection.
func (e *Endpoint) Destroy() {
	if e.client != nil {
		_ = e.client.Unsubscribe(e.BrokerConfig.Topic)
		e.client.Disconnect(250)
		e.client = nil
	}
}

func (e *Endpoint) onMessage(client paho.Client, message paho.Message) {
	payload := message.Payload()
	var value interface{}
	if err := json.Unmarshal(payload, &value); err != nil {
		// Raw payloads that are not JSON flow through as strings.
		value = string(payload)
	}
	context := map[string]interface{}{types.DefaultOperandName: value}
	if e.chain != nil {
		result, err := visionql.EvaluateChain(e.Config, e.chain, context)
		if err != nil {
			e.logf("evaluation of %s message failed: %v", message.Topic(), err)
			return
		}
		e.publish(client, result)
		return
	}
	match, err := visionql.EvaluateGroup(e.Config, e.group, context)
	if err != nil {
		e.logf("evaluation of %s message failed: %v", message.Topic(), err)
		return
	}
	if match {
		e.publishRaw(client, payload)
	}
}

func (e *Endpoint) publish(client paho.Client, result interface{}) {
	data, err := json.Marshal(result)
	if err != nil {
		e.logf("cannot marshal result: %v", err)
		return
	}
	e.publishRaw(client, data)
}

func (e *Endpoint) publishRaw(client paho.Client, data []byte) {
	if e.BrokerConfig.ResultTopic == "" {
		return
	}
	client.Publish(e.BrokerConfig.ResultTopic, e.BrokerConfig.QOS, false, data)
}

func (e *Endpoint) logf(format string, v ...interface{}) {
	if e.Config.Logger != nil {
		e.Config.Logger.Printf(format, v...)
	}
}
